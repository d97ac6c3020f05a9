package models

// ProjectInfo identifies one buildable unit detected within a directory.
type ProjectInfo struct {
	Name string `json:"name" yaml:"name"`

	// Dir is the project root directory.
	Dir string `json:"dir" yaml:"dir"`

	// Descriptor is the marker file that identified the project
	// (e.g. Shooter.uproject or project.godot).
	Descriptor string `json:"descriptor" yaml:"descriptor"`

	Engine EngineType `json:"engine" yaml:"engine"`

	// EngineVersion is the engine version recorded by the descriptor, may be empty.
	EngineVersion string `json:"engine_version,omitempty" yaml:"engine_version,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
