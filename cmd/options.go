package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags which is the same library used by other Viant
// CLIs (e.g. Agently).
type Options struct {
	Config string `short:"f" long:"config" description:"asc-mcp configuration YAML path (credentials fall back to ASC_* environment variables)"`

	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the App Store Connect tools"`
	Exec      *ExecCmd      `command:"exec"       description:"Invoke one tool locally and print its result"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one tool"`
	Token     *TokenCmd     `command:"token"      description:"Mint and print one App Store Connect token"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "token":
		o.Token = &TokenCmd{}
	}
}
