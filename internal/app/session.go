package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/PlaxKING/tower-game/internal/adapter/scenefs"
	"github.com/PlaxKING/tower-game/internal/config"
	"github.com/PlaxKING/tower-game/internal/service/export"
	"github.com/PlaxKING/tower-game/internal/service/validate"
)

// Skeletal asset types get the SK_ family, static ones SM_. Unknown or empty
// asset types fall back to the generic static prefix.
var assetTypePrefixes = map[string]string{
	"weapon":      "SM_Weapon",
	"armor":       "SM_Armor",
	"monster":     "SK_Monster",
	"environment": "SM_Env",
	"character":   "SK_Char",
}

const defaultPrefix = "SM"

// Session is the backend of the interactive console. It owns no scene state
// itself; the scene accessor's single resident scene is the state.
type Session struct {
	cfg      *config.Config
	accessor *scenefs.Accessor
	invoker  *export.Invoker
	log      *slog.Logger
}

func NewSession(cfg *config.Config, accessor *scenefs.Accessor, invoker *export.Invoker, log *slog.Logger) *Session {
	return &Session{
		cfg:      cfg,
		accessor: accessor,
		invoker:  invoker,
		log:      log.With(slog.String("item", "Session")),
	}
}

// SetupWorkspace writes the authoring reference scene (metric units, ground
// plane, player height marker) and loads it as the current scene.
func (s *Session) SetupWorkspace() (string, error) {
	path := filepath.Join(s.cfg.Workspace.Dir, "reference"+s.cfg.Pipeline.SourceExt)

	if err := s.accessor.Write(scenefs.ReferenceScene(), path); err != nil {
		return "", err
	}
	if _, err := s.accessor.Load(path); err != nil {
		return "", err
	}

	return path, nil
}

// LoadScene makes the given source file the current scene.
func (s *Session) LoadScene(path string) (string, error) {
	scene, err := s.accessor.Load(path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Loaded %s (%d objects, %d materials)",
		filepath.Base(path), len(scene.Objects), len(scene.Materials)), nil
}

// ValidateScene runs the authoring quick checks against the current scene.
// Findings are advisory only.
func (s *Session) ValidateScene() ([]string, error) {
	scene, _, err := s.accessor.Current()
	if err != nil {
		return nil, err
	}

	return validate.QuickCheck(scene), nil
}

// ExportScene exports the current scene under an asset-type prefix. Reference
// objects never reach the interchange file.
func (s *Session) ExportScene(assetType string) (string, error) {
	scene, sourcePath, err := s.accessor.Current()
	if err != nil {
		return "", err
	}

	prefix, ok := assetTypePrefixes[strings.ToLower(assetType)]
	if !ok {
		prefix = defaultPrefix
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), s.cfg.Pipeline.SourceExt)
	dstPath := filepath.Join(s.cfg.Pipeline.ExportDir, prefix+"_"+base+s.cfg.Pipeline.ExportExt)

	if err := s.invoker.Export(scene, sourcePath, dstPath); err != nil {
		return "", err
	}

	return dstPath, nil
}
