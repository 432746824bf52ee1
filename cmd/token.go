package cmd

import (
	"context"
	"fmt"
)

// TokenCmd mints one credential and prints it. Useful to verify the key
// setup without dispatching a tool call.
type TokenCmd struct{}

func (c *TokenCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	token, err := svc.Issuer().Issue(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
