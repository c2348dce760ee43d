// Package rules holds the static table mapping project types to their
// marker files and known build-artifact directories, plus detection of
// a project type from a directory's immediate children.
package rules

// Rule describes one project type: how to recognize it and which of
// its subdirectories hold regenerable build output.
type Rule struct {
	// Name is the human-readable project type, e.g. "Node.js".
	Name string

	// Markers are exact filenames whose presence identifies the type.
	Markers []string

	// Exts are filename suffixes (with leading dot) that identify the
	// type when no exact marker matches.
	Exts []string

	// Artifacts are directory names resolved relative to the project
	// root. Entries may contain glob metacharacters (e.g. "*.egg-info").
	Artifacts []string
}

// Table is an ordered rule set. Earlier rules win when a directory
// matches more than one.
type Table []Rule

// Builtin returns a fresh copy of the default rule table.
func Builtin() Table {
	return append(Table(nil), builtin...)
}

var builtin = Table{
	{
		Name:      "Rust",
		Markers:   []string{"Cargo.toml"},
		Artifacts: []string{"target", ".xwin-cache"},
	},
	{
		Name:      "Node.js",
		Markers:   []string{"package.json"},
		Artifacts: []string{"node_modules", ".next", ".nuxt", "dist", "build", ".angular"},
	},
	{
		Name: "Python",
		Exts: []string{".py"},
		Artifacts: []string{
			"__pycache__", ".pytest_cache", ".mypy_cache", ".ruff_cache",
			".tox", ".nox", ".venv", "venv", ".hypothesis", "__pypackages__",
			"*.egg-info",
		},
	},
	{
		Name:      ".NET",
		Exts:      []string{".csproj", ".fsproj"},
		Artifacts: []string{"bin", "obj"},
	},
	{
		Name:      "Unity",
		Markers:   []string{"Assembly-CSharp.csproj"},
		Artifacts: []string{"Library", "Temp", "Obj", "Logs", "MemoryCaptures", "Build", "Builds"},
	},
	{
		Name:      "Unreal Engine",
		Exts:      []string{".uproject"},
		Artifacts: []string{"Binaries", "Build", "Saved", "Intermediate", "DerivedDataCache"},
	},
	{
		Name:      "Maven",
		Markers:   []string{"pom.xml"},
		Artifacts: []string{"target"},
	},
	{
		Name:      "Gradle",
		Markers:   []string{"build.gradle", "build.gradle.kts"},
		Artifacts: []string{"build", ".gradle"},
	},
	{
		Name:      "CMake",
		Markers:   []string{"CMakeLists.txt"},
		Artifacts: []string{"build", "cmake-build-debug", "cmake-build-release"},
	},
	{
		Name:      "Haskell Stack",
		Markers:   []string{"stack.yaml"},
		Artifacts: []string{".stack-work"},
	},
	{
		Name:      "Scala SBT",
		Markers:   []string{"build.sbt"},
		Artifacts: []string{"target", "project/target"},
	},
	{
		Name:      "PHP Composer",
		Markers:   []string{"composer.json"},
		Artifacts: []string{"vendor"},
	},
	{
		Name:      "Dart/Flutter",
		Markers:   []string{"pubspec.yaml"},
		Artifacts: []string{"build", ".dart_tool"},
	},
	{
		Name:      "Elixir",
		Markers:   []string{"mix.exs"},
		Artifacts: []string{"_build", ".elixir-tools", ".elixir_ls", ".lexical"},
	},
	{
		Name:      "Swift",
		Markers:   []string{"Package.swift"},
		Artifacts: []string{".build", ".swiftpm"},
	},
	{
		Name:      "Zig",
		Markers:   []string{"build.zig"},
		Artifacts: []string{"zig-cache", "zig-out"},
	},
	{
		Name:      "Godot",
		Markers:   []string{"project.godot"},
		Artifacts: []string{".godot"},
	},
	{
		Name:      "Jupyter",
		Exts:      []string{".ipynb"},
		Artifacts: []string{".ipynb_checkpoints"},
	},
}

// Find returns the rule with the given name, or nil.
func (t Table) Find(name string) *Rule {
	for i := range t {
		if t[i].Name == name {
			return &t[i]
		}
	}
	return nil
}

// Names returns the rule names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i := range t {
		names[i] = t[i].Name
	}
	return names
}
