package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PackageJSONFile is the descriptor written into each plugin directory.
const PackageJSONFile = "package.json"

// PackageJSON is the minimal descriptor package managers need to see a
// plugin directory as a package.
type PackageJSON struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

// Duplicate reports plugins whose descriptors share a package name.
type Duplicate struct {
	PackageName string
	Plugins     []string
}

// PackageJSONResult reports what WritePackageJSONs did.
type PackageJSONResult struct {
	Written    []string
	Skipped    []string // plugin already had a package.json
	Duplicates []Duplicate
}

// WritePackageJSONs writes a package.json named after the kebab-cased
// plugin name into each plugins/<name> directory. Existing files are left
// alone. Plugins mapping to the same package name are all written and
// reported in Duplicates, in first-seen order.
func WritePackageJSONs(pluginsDir string, plugins []string) (*PackageJSONResult, error) {
	result := &PackageJSONResult{}
	owners := map[string][]string{}
	var order []string

	for _, name := range plugins {
		pkgName := KebabCase(name)
		if _, seen := owners[pkgName]; !seen {
			order = append(order, pkgName)
		}
		owners[pkgName] = append(owners[pkgName], name)

		target := filepath.Join(pluginsDir, name, PackageJSONFile)
		if _, err := os.Lstat(target); err == nil {
			result.Skipped = append(result.Skipped, name)
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("checking %s: %w", target, err)
		}

		data, err := json.MarshalIndent(PackageJSON{Name: pkgName, Private: true}, "", "    ")
		if err != nil {
			return result, fmt.Errorf("encoding package.json for %s: %w", name, err)
		}
		if err := os.WriteFile(target, append(data, '\n'), 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", target, err)
		}
		result.Written = append(result.Written, name)
	}

	for _, pkgName := range order {
		if len(owners[pkgName]) > 1 {
			result.Duplicates = append(result.Duplicates, Duplicate{PackageName: pkgName, Plugins: owners[pkgName]})
		}
	}
	return result, nil
}
