// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	CommandDirNotFoundId
	DefinitionParseErrorId
	DuplicateCommandNameId
	RegistryAuthFailedId
	WorkspaceNotFoundId
	SyncPartialFailureId
	CredentialsNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the cmdsync configuration file.

## Configuration file locations:
- Linux: ~/.config/cmdsync/config.cue
- macOS: ~/Library/Application Support/cmdsync/config.cue
- Windows: %APPDATA%\cmdsync\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ cmdsync config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/cmdsync/config.cue
~~~

## Example configuration:
~~~cue
registry: {
  url:       "https://registry.example.com"
  app_id:    "123456789"
  token_env: "CMDSYNC_TOKEN"
}

command_dirs: ["./commands"]

ui: {
  verbose: false
}
~~~`,
	}

	commandDirNotFoundIssue = &Issue{
		id: CommandDirNotFoundId,
		mdMsg: `
# Command directory not found!

None of the configured command directories exist, so there is nothing to sync.

## Things you can try:
- Create the directory and add a first command:
~~~
$ mkdir commands
$ cmdsync init commands/ping.cue
~~~

- Or point cmdsync at your definitions:
~~~cue
command_dirs: ["./bot/commands"]
~~~`,
	}

	definitionParseErrorIssue = &Issue{
		id: DefinitionParseErrorId,
		mdMsg: `
# Failed to parse a command definition!

One of your definition files contains syntax errors or invalid fields,
and a sync pass never runs from an incomplete definition set.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- An unrecognized "kind" value
- Options declared on a context-menu command

## Things you can try:
- Check the error message above for the specific file and field
- Validate the file without touching the registry:
~~~
$ cmdsync check
~~~

## Example of a valid definition:
~~~cue
name:        "ban"
description: "Ban a member"
kind:        "slash"
options: [
  {
    name:        "target"
    description: "Member to ban"
    type:        "user"
    required:    true
  },
]
~~~`,
	}

	duplicateCommandNameIssue = &Issue{
		id: DuplicateCommandNameId,
		mdMsg: `
# Duplicate command name!

Two definition files resolve to the same command name. The registry keys
commands by name, so only the first definition is kept.

## Things you can try:
- Rename one of the files (a file with no explicit "name" uses its
  base name)
- Or set an explicit, distinct "name" field in one of them`,
	}

	registryAuthFailedIssue = &Issue{
		id: RegistryAuthFailedId,
		mdMsg: `
# Registry authentication failed!

The registry rejected the request token.

## Things you can try:
- Check that the token environment variable is set and exported:
~~~
$ echo $CMDSYNC_TOKEN
~~~

- Or store the token in the credentials file:
~~~
$ cmdsync config show   # prints the credentials file location
~~~

- Verify the token has the commands.write scope for your application`,
	}

	workspaceNotFoundIssue = &Issue{
		id: WorkspaceNotFoundId,
		mdMsg: `
# Workspace not found!

A configured workspace could not be resolved. The workspace may not exist,
or your application may not have been granted access to it.

## Things you can try:
- Check the workspace IDs in your configuration:
~~~cue
workspaces: ["123456789", "987654321"]
~~~

- Verify the application is installed in that workspace
- Remove the entry to fall back to the global registry:
~~~cue
workspaces: []
~~~

Other configured workspaces are still synced; only the missing one is
skipped.`,
	}

	syncPartialFailureIssue = &Issue{
		id: SyncPartialFailureId,
		mdMsg: `
# Some commands failed to sync!

The pass finished, but one or more create/update calls were rejected.
Commands already sent are live in the registry; failed ones keep their
previous remote state.

## Things you can try:
- Re-run with verbose output to see each failure:
~~~
$ cmdsync --verbose sync
~~~

- Check the failing definitions for values the registry rejects
  (name format, option count limits)
- Simply re-run the sync: a pass is idempotent and only the failed
  commands will change`,
	}

	credentialsNotFoundIssue = &Issue{
		id: CredentialsNotFoundId,
		mdMsg: `
# No registry credentials found!

cmdsync needs a token to talk to the registry, and neither the configured
token environment variable nor the credentials file provided one.

## Things you can try:
- Export the token:
~~~
$ export CMDSYNC_TOKEN=your-token-here
~~~

- Or create the credentials file next to your config:
~~~toml
[registry]
token = "your-token-here"
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		commandDirNotFoundIssue.Id():   commandDirNotFoundIssue,
		definitionParseErrorIssue.Id(): definitionParseErrorIssue,
		duplicateCommandNameIssue.Id(): duplicateCommandNameIssue,
		registryAuthFailedIssue.Id():   registryAuthFailedIssue,
		workspaceNotFoundIssue.Id():    workspaceNotFoundIssue,
		syncPartialFailureIssue.Id():   syncPartialFailureIssue,
		credentialsNotFoundIssue.Id():  credentialsNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
