package scaffold

import "testing"

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"ExamplePlugin": "example-plugin",
		"ABC":           "a-b-c",
		"plugin":        "plugin",
		"myPlugin":      "my-plugin",
		"Plugin2Go":     "plugin2-go",
		"":              "",
	}
	for in, want := range tests {
		if got := KebabCase(in); got != want {
			t.Errorf("KebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePluginName(t *testing.T) {
	valid := []string{"ExamplePlugin", "A", "Plugin2"}
	invalid := []string{"", "examplePlugin", "Example-Plugin", "Example Plugin", "2Plugin", "../Escape"}

	for _, name := range valid {
		if err := ValidatePluginName(name); err != nil {
			t.Errorf("ValidatePluginName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range invalid {
		if err := ValidatePluginName(name); err == nil {
			t.Errorf("ValidatePluginName(%q) = nil, want error", name)
		}
	}
}
