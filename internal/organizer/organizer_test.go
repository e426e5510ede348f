package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

func makeApp(t *testing.T, name string, category models.Category) models.AppRecord {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	entry := filepath.Join(dir, "app.py")
	if err := os.WriteFile(entry, []byte("pass"), 0644); err != nil {
		t.Fatal(err)
	}
	return models.AppRecord{
		Name:      name,
		EntryPath: entry,
		Dir:       dir,
		Type:      models.TypeStreamlit,
		Category:  category,
	}
}

func TestOrganizeCreatesCategoryFolders(t *testing.T) {
	base := t.TempDir()
	o := New(base, hclog.NewNullLogger())

	o.Organize(nil)

	for _, c := range models.Categories() {
		if _, err := os.Stat(filepath.Join(base, string(c))); err != nil {
			t.Errorf("category folder %s not created: %v", c, err)
		}
	}
}

func TestOrganizePlacesApps(t *testing.T) {
	base := t.TempDir()
	app := makeApp(t, "DemoApp", models.CategoryWebDev)

	placements := New(base, hclog.NewNullLogger()).Organize([]models.AppRecord{app})
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}

	p := placements[0]
	if p.Err != nil {
		t.Fatalf("placement failed: %v", p.Err)
	}
	want := filepath.Join(base, string(models.CategoryWebDev), "DemoApp")
	if p.Target != want {
		t.Errorf("target = %q, want %q", p.Target, want)
	}

	// The placed entry must resolve to the app's entry file, whether the
	// placement was a symlink or a copy.
	if _, err := os.Stat(filepath.Join(p.Target, "app.py")); err != nil {
		t.Errorf("placed app entry not reachable: %v", err)
	}

	if p.Method != MethodLink && p.Method != MethodCopy {
		t.Errorf("method = %v, want link or copy", p.Method)
	}
}

func TestOrganizeIsIdempotent(t *testing.T) {
	base := t.TempDir()
	app := makeApp(t, "DemoApp", models.CategoryNLP)
	o := New(base, hclog.NewNullLogger())

	records := []models.AppRecord{app}
	first := o.Organize(records)
	second := o.Organize(records)

	if Failed(first) != 0 || Failed(second) != 0 {
		t.Fatalf("re-running organize must not fail: first=%d second=%d", Failed(first), Failed(second))
	}
	if _, err := os.Stat(filepath.Join(second[0].Target, "app.py")); err != nil {
		t.Errorf("target broken after re-run: %v", err)
	}
}

func TestOrganizeContinuesPastFailures(t *testing.T) {
	base := t.TempDir()
	good := makeApp(t, "GoodApp", models.CategoryML)

	// A record whose source directory does not exist cannot be linked
	// meaningfully nor copied.
	bad := models.AppRecord{
		Name:     "GhostApp",
		Dir:      filepath.Join(t.TempDir(), "missing"),
		Category: models.CategoryML,
	}

	placements := New(base, hclog.NewNullLogger()).Organize([]models.AppRecord{bad, good})
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want 2 (run must not abort)", len(placements))
	}

	byName := map[string]Placement{}
	for _, p := range placements {
		byName[p.App.Name] = p
	}
	if p := byName["GoodApp"]; p.Err != nil {
		t.Errorf("GoodApp placement failed: %v", p.Err)
	}
}

func TestOrganizeGroupsByCategoryOrder(t *testing.T) {
	base := t.TempDir()
	apps := []models.AppRecord{
		makeApp(t, "LateApp", models.CategoryGenAI),
		makeApp(t, "EarlyApp", models.CategoryWebDev),
	}

	placements := New(base, hclog.NewNullLogger()).Organize(apps)
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want 2", len(placements))
	}
	if placements[0].App.Name != "EarlyApp" {
		t.Errorf("placements not in category order: first is %s", placements[0].App.Name)
	}
}

func TestMethodString(t *testing.T) {
	if MethodLink.String() != "link" || MethodCopy.String() != "copy" || MethodNone.String() != "none" {
		t.Error("unexpected Method string values")
	}
}
