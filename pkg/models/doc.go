// Package models provides shared data models and types for gph.
//
// This package contains the engine enumeration and the detection result
// type that are passed between the configuration, engine and project
// packages.
//
// # Engine Types
//
// gph supports three third-party game engines:
//   - Unreal: Epic Games' Unreal Engine, driven through RunUAT
//   - Unity: Unity Editor in batch mode
//   - Godot: Godot Engine in headless mode
//
// Use [EngineType] and its constants:
//
//	t, err := models.ParseEngineType("unreal")
//	if err == nil {
//	    fmt.Println(t)       // "Unreal"
//	    fmt.Println(t.Key()) // "unreal"
//	}
//
// # Detected Projects
//
// [ProjectInfo] describes one buildable unit found by an engine backend
// while scanning a directory. It is transient and never persisted.
package models
