// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		ConfigLoadFailedId,
		CommandDirNotFoundId,
		DefinitionParseErrorId,
		DuplicateCommandNameId,
		RegistryAuthFailedId,
		WorkspaceNotFoundId,
		SyncPartialFailureId,
		CredentialsNotFoundId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestGet_KnownIssues(t *testing.T) {
	for _, id := range []Id{
		ConfigLoadFailedId,
		CommandDirNotFoundId,
		DefinitionParseErrorId,
		DuplicateCommandNameId,
		RegistryAuthFailedId,
		WorkspaceNotFoundId,
		SyncPartialFailureId,
		CredentialsNotFoundId,
	} {
		issue := Get(id)
		if issue == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if issue.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, issue.Id())
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty markdown message", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %v, want nil", got)
	}
}

func TestValues_CoversCatalog(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Errorf("Values() returned %d issues, want %d", len(values), len(issues))
	}
}

func TestIssue_MarkdownMentionsRemediation(t *testing.T) {
	issue := Get(WorkspaceNotFoundId)
	if issue == nil {
		t.Fatal("Get(WorkspaceNotFoundId) returned nil")
	}
	msg := string(issue.MarkdownMsg())
	if !strings.Contains(msg, "Things you can try") {
		t.Error("workspace issue should include remediation steps")
	}
	if !strings.Contains(msg, "workspaces") {
		t.Error("workspace issue should reference the workspaces config key")
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	issue := &Issue{
		id:       ConfigLoadFailedId,
		mdMsg:    "test",
		docLinks: []HttpLink{"https://example.com/docs"},
	}

	links := issue.DocLinks()
	links[0] = "mutated"

	if issue.docLinks[0] != "https://example.com/docs" {
		t.Error("DocLinks() should return a clone, not the backing slice")
	}
}

func TestIssue_Render(t *testing.T) {
	old := render
	defer func() { render = old }()

	var rendered string
	render = func(in, _ string) (string, error) {
		rendered = in
		return in, nil
	}

	issue := &Issue{
		id:       SyncPartialFailureId,
		mdMsg:    "# heading",
		docLinks: []HttpLink{"https://example.com/docs"},
	}

	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "# heading") {
		t.Error("render input should contain the markdown message")
	}
	if !strings.Contains(out, "See also") {
		t.Error("rendered output should append the links section")
	}
}
