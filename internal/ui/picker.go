package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/modu-ai/gph/pkg/models"
)

// engineDescriptions is shown next to each choice in the picker.
var engineDescriptions = map[models.EngineType]string{
	models.EngineUnreal: "Unreal Engine via RunUAT",
	models.EngineUnity:  "Unity Editor in batch mode",
	models.EngineGodot:  "Godot headless export",
}

// EngineOptions returns the picker choices. Detected engines are listed
// first, followed by an entry that leaves the engine unset.
func EngineOptions(detected []models.EngineType) []huh.Option[models.EngineType] {
	seen := make(map[models.EngineType]bool, len(detected))
	var opts []huh.Option[models.EngineType]
	for _, t := range detected {
		seen[t] = true
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s - %s (detected)", t, engineDescriptions[t]), t))
	}
	for _, t := range models.EngineTypes() {
		if seen[t] {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s - %s", t, engineDescriptions[t]), t))
	}
	return append(opts, huh.NewOption[models.EngineType]("Decide later", ""))
}

// PickEngine asks which engine the new project uses. It returns
// ErrHeadless without a terminal and ErrCancelled when the user aborts.
func PickEngine(theme *Theme, hm *HeadlessManager, detected []models.EngineType) (models.EngineType, error) {
	if hm.IsHeadless() {
		return "", ErrHeadless
	}

	var selected models.EngineType
	if len(detected) > 0 {
		selected = detected[0]
	}

	sel := huh.NewSelect[models.EngineType]().
		Title("Which engine does this project use?").
		Description("Stored as engine_type in .gph/config.toml").
		Options(EngineOptions(detected)...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(theme.huhTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("engine picker: %w", err)
	}
	return selected, nil
}
