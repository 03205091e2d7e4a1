package html_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/renderers/html"
	"github.com/goliatone/go-condform/pkg/uischema"
)

func render(t *testing.T, c *form.Controller, opts ...html.Option) string {
	t.Helper()
	r, err := html.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.RenderString(c.Snapshot())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func newController(t *testing.T, opts ...form.Option) *form.Controller {
	t.Helper()
	c, err := form.New(opts...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

func TestRender_DefaultFormShowsOnlyAlwaysVisibleFields(t *testing.T) {
	out := render(t, newController(t))

	for _, want := range []string{
		`name="firstName"`,
		`name="hasWorkExperience"`,
		`name="knowsOtherLanguages"`,
		`value="noFormalEducation" checked`,
		"Full Name",
		"First name is required",
		"Bachelors Degree",
		`id="field-firstName"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	for _, hidden := range []string{`name="companyName"`, `name="languages.0.name"`, `name="schoolName"`, `name="universityName"`} {
		if strings.Contains(out, hidden) {
			t.Fatalf("hidden field %q rendered:\n%s", hidden, out)
		}
	}
}

func TestRender_LanguagesListAndRemoveState(t *testing.T) {
	c := newController(t, form.WithInitialValues(map[string]any{
		"firstName":           "Ann",
		"knowsOtherLanguages": true,
	}))

	out := render(t, c)
	if !strings.Contains(out, `name="languages.0.name"`) {
		t.Fatalf("languages entry missing:\n%s", out)
	}
	if !strings.Contains(out, `value="0" disabled`) {
		t.Fatalf("remove should be disabled with a single entry:\n%s", out)
	}
	if !strings.Contains(out, "Language is required") {
		t.Fatalf("entry error missing:\n%s", out)
	}

	c.AddListEntry()
	if _, err := c.SetField("languages.0.name", "English"); err != nil {
		t.Fatalf("set: %v", err)
	}
	out = render(t, c)
	if strings.Contains(out, "disabled") {
		t.Fatalf("remove should be enabled with two entries:\n%s", out)
	}
	if !strings.Contains(out, `value="English"`) {
		t.Fatalf("entry value missing:\n%s", out)
	}
	if got := strings.Count(out, "Language is required"); got != 1 {
		t.Fatalf("expected one entry error, got %d", got)
	}
}

func TestRender_EscapesValuesAndKeepsSanitisedHelp(t *testing.T) {
	overlay, err := uischema.Parse([]byte(`{"fields":{"companyName":{"helpText":"Your <em>current</em> employer<script>x</script>"}}}`), "overlay.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := newController(t, form.WithInitialValues(map[string]any{
		"firstName":         `<b>Ann</b>`,
		"hasWorkExperience": true,
	}))

	out := render(t, c,
		html.WithUISchema(uischema.Merge(uischema.Default(), overlay)),
		html.WithAction("/profile"),
		html.WithHiddenField("_csrf", `tok"en`),
		html.WithHiddenField(" ", "ignored"),
	)

	if strings.Contains(out, "<b>Ann</b>") {
		t.Fatalf("value not escaped:\n%s", out)
	}
	if !strings.Contains(out, "Your <em>current</em> employer") {
		t.Fatalf("help markup missing:\n%s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("script leaked:\n%s", out)
	}
	if !strings.Contains(out, `<input type="hidden" name="_csrf" value="tok&quot;en">`) {
		t.Fatalf("hidden field missing or unescaped:\n%s", out)
	}
	if strings.Contains(out, "ignored") {
		t.Fatalf("blank hidden field rendered:\n%s", out)
	}
	if !strings.Contains(out, `action="/profile"`) {
		t.Fatalf("action missing:\n%s", out)
	}
	if !strings.Contains(out, "Company name is required") {
		t.Fatalf("company error missing:\n%s", out)
	}
}

func TestRender_CustomTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"form.html.tpl": {Data: []byte(`{% for field in fields %}{{ field.path }};{% endfor %}`)},
	}
	out := render(t, newController(t), html.WithTemplatesFS(fsys))
	if out != "firstName;hasWorkExperience;knowsOtherLanguages;educationLevel;" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := html.New(html.WithTemplatesFS(fstest.MapFS{})); err == nil {
		t.Fatalf("expected missing template error")
	}
}
