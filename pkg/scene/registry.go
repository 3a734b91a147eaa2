package scene

import (
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// SceneInfo describes a scene that can be built by name
type SceneInfo struct {
	Name        string // Identifier used on the command line, e.g. "cornell-box"
	DisplayName string // Human-readable name derived from Name
	Description string
}

type builder struct {
	description string
	build       func(Options) *Scene
}

var registry = map[string]builder{
	"random-spheres": {"Bouncing spheres over a checkered ground", NewRandomSpheresScene},
	"two-spheres":    {"Two checkered spheres", NewTwoSpheresScene},
	"earth":          {"An image-textured globe", NewEarthScene},
	"perlin-spheres": {"Marble-like Perlin noise spheres", NewPerlinSpheresScene},
	"quads":          {"Five colored quads around the camera", NewQuadsScene},
	"simple-light":   {"Perlin spheres lit by a rectangular light", NewSimpleLightScene},
	"cornell-box":    {"The classic Cornell box with two rotated boxes", NewCornellBoxScene},
	"cornell-smoke":  {"Cornell box with smoke and fog blocks", NewCornellSmokeScene},
	"final":          {"Every feature at preview quality", NewFinalScene},
	"final-hq":       {"Every feature at full quality", NewFinalHQScene},
}

// DefaultSceneName is built when no scene is requested
const DefaultSceneName = "final"

// NewScene builds the named scene
func NewScene(name string, options Options) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, xerrors.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	s := b.build(options)
	s.Name = name
	return s, nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes describes every registered scene, sorted by name
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			Name:        name,
			DisplayName: titleCase(name),
			Description: registry[name].description,
		})
	}
	return scenes
}

// titleCase converts "cornell-box" or "final_hq" to "Cornell Box" / "Final Hq"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
