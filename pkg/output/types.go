package output

import "encoding/xml"

// MenuResult represents the grouped selection menu in structured form.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate counts
//   - Groups: Non-empty groups in display order
//   - Warnings: Report and configuration warnings
type MenuResult struct {
	XMLName  xml.Name    `json:"-" yaml:"-" xml:"menuResult"`
	Summary  MenuSummary `json:"summary" yaml:"summary" xml:"summary"`
	Groups   []MenuGroup `json:"groups" yaml:"groups" xml:"groups>group"`
	Warnings []string    `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// MenuSummary holds summary statistics for a menu.
//
// Fields:
//   - TotalPackages: Number of records in the report
//   - UpgradablePackages: Number of choices across all groups
//   - Groups: Number of non-empty groups
type MenuSummary struct {
	TotalPackages      int `json:"total_packages" yaml:"total_packages" xml:"totalPackages"`
	UpgradablePackages int `json:"upgradable_packages" yaml:"upgradable_packages" xml:"upgradablePackages"`
	Groups             int `json:"groups" yaml:"groups" xml:"groups"`
}

// MenuGroup is one titled section of the menu.
type MenuGroup struct {
	Key      string        `json:"key" yaml:"key" xml:"key,attr"`
	Title    string        `json:"title" yaml:"title" xml:"title"`
	Packages []MenuPackage `json:"packages" yaml:"packages" xml:"packages>package"`
}

// MenuPackage is one selectable row of the menu.
//
// Fields:
//   - Name: Package name
//   - Current: The version shown as current (declared version for mismatches)
//   - Latest: Latest version
//   - Link: Homepage, or the error message when no latest version is known
//   - DevDependency: Whether the package is a devDependency
//   - Missing: Whether the package is not installed
//   - Short: Collapsed label (name@latest)
type MenuPackage struct {
	Name          string `json:"name" yaml:"name" xml:"name"`
	Current       string `json:"current,omitempty" yaml:"current,omitempty" xml:"current,omitempty"`
	Latest        string `json:"latest,omitempty" yaml:"latest,omitempty" xml:"latest,omitempty"`
	Link          string `json:"link,omitempty" yaml:"link,omitempty" xml:"link,omitempty"`
	DevDependency bool   `json:"dev_dependency" yaml:"dev_dependency" xml:"devDependency"`
	Missing       bool   `json:"missing" yaml:"missing" xml:"missing"`
	Short         string `json:"short" yaml:"short" xml:"short"`
}

// SelectionResult represents the operator's selection and the resulting install plan.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Selected: Selected packages in display order
//   - Commands: Installer command lines that would apply the selection
//   - Warnings: Report and configuration warnings
type SelectionResult struct {
	XMLName  xml.Name      `json:"-" yaml:"-" xml:"selectionResult"`
	Selected []MenuPackage `json:"selected" yaml:"selected" xml:"selected>package"`
	Commands []string      `json:"commands" yaml:"commands" xml:"commands>command"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}
