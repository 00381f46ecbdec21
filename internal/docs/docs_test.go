package docs

import (
	"strings"
	"testing"

	"github.com/lawfully-illegal/masterhub/internal/config"
	"github.com/lawfully-illegal/masterhub/internal/lib/letter"
)

func TestMarkdownListsEveryEndpoint(t *testing.T) {
	hub := config.DefaultConfig().Hub
	hub.PublicHost = "ledger.example.org"

	gen, err := NewGenerator(hub, letter.MustNewRenderer())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	out, err := gen.Markdown()
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	md := string(out)

	if !strings.HasPrefix(md, "# "+hub.Name) {
		t.Fatalf("document must start with the hub name, got %q", md[:40])
	}

	for _, ep := range Catalogue() {
		heading := "### `" + ep.Method + " " + ep.Path + "`"
		if !strings.Contains(md, heading) {
			t.Fatalf("missing endpoint heading %s", heading)
		}
	}

	for _, want := range []string{
		"## Legal",
		"| `q` | query | yes |",
		`"debt_amount": "5000.00"`,
		"DEBT AMOUNT: $5000.00",
		"CC: Evidence Ledger - ledger.example.org",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown is missing %q", want)
		}
	}
}

func TestGroupsKeepCatalogueOrder(t *testing.T) {
	groups := Groups(Catalogue())

	var names []string
	total := 0
	for _, g := range groups {
		names = append(names, g.Name)
		total += len(g.Endpoints)
	}

	if total != len(Catalogue()) {
		t.Fatalf("groups hold %d endpoints, catalogue has %d", total, len(Catalogue()))
	}
	if names[0] != "service" {
		t.Fatalf("first group = %q", names[0])
	}

	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("group %q appears twice", n)
		}
		seen[n] = true
	}
}
