package game

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// AlienFrameDuration is the number of ticks each alien animation frame is shown
const AlienFrameDuration = 10

// Assets is the sprite registry shared read-only by the simulation and the renderer.
// It is built once at startup.
type Assets struct {
	// Animation frames per live alien variant; frame 0 doubles as the hit box
	AlienFrames map[AlienVariant][]*Sprite

	AlienDeath *Sprite
	Player     *Sprite
	Bullet     *Sprite

	// Ticks per alien animation frame
	FrameDuration int
}

// DefaultAssets returns the built-in sprite set
func DefaultAssets() *Assets {
	return &Assets{
		AlienFrames: map[AlienVariant][]*Sprite{
			AlienTypeA: {
				MustParseSprite(
					"...@@...",
					"..@@@@..",
					".@@@@@@.",
					"@@.@@.@@",
					"@@@@@@@@",
					".@.@@.@.",
					"@......@",
					".@....@.",
				),
				MustParseSprite(
					"...@@...",
					"..@@@@..",
					".@@@@@@.",
					"@@.@@.@@",
					"@@@@@@@@",
					"..@..@..",
					".@.@@.@.",
					"@.@..@.@",
				),
			},
			AlienTypeB: {
				MustParseSprite(
					"..@.....@..",
					"...@...@...",
					"..@@@@@@@..",
					".@@.@@@.@@.",
					"@@@@@@@@@@@",
					"@.@@@@@@@.@",
					"@.@.....@.@",
					"...@@.@@...",
				),
				MustParseSprite(
					"..@.....@..",
					"@..@...@..@",
					"@.@@@@@@@.@",
					"@@@.@@@.@@@",
					"@@@@@@@@@@@",
					".@@@@@@@@@.",
					"..@.....@..",
					".@.......@.",
				),
			},
			AlienTypeC: {
				MustParseSprite(
					"....@@@@....",
					".@@@@@@@@@@.",
					"@@@@@@@@@@@@",
					"@@@..@@..@@@",
					"@@@@@@@@@@@@",
					"...@@..@@...",
					"..@@.@@.@@..",
					"@@........@@",
				),
				MustParseSprite(
					"....@@@@....",
					".@@@@@@@@@@.",
					"@@@@@@@@@@@@",
					"@@@..@@..@@@",
					"@@@@@@@@@@@@",
					"..@@@..@@@..",
					".@@..@@..@@.",
					"..@@....@@..",
				),
			},
		},
		AlienDeath: MustParseSprite(
			".@..@...@..@.",
			"..@..@.@..@..",
			"...@.....@...",
			"@@.........@@",
			"...@.....@...",
			"..@..@.@..@..",
			".@..@...@..@.",
		),
		Player: MustParseSprite(
			".....@.....",
			"....@@@....",
			"....@@@....",
			".@@@@@@@@@.",
			"@@@@@@@@@@@",
			"@@@@@@@@@@@",
			"@@@@@@@@@@@",
		),
		Bullet: MustParseSprite(
			"@",
			"@",
			"@",
		),
		FrameDuration: AlienFrameDuration,
	}
}

// Validate checks that every live variant maps to at least one frame and that
// the fixed sprites are present
func (a *Assets) Validate() error {
	for _, v := range LiveVariants {
		frames := a.AlienFrames[v]
		if len(frames) == 0 {
			return fmt.Errorf("no animation frames for %s", v)
		}
		for i, f := range frames {
			if f == nil {
				return fmt.Errorf("%s frame %d is nil", v, i)
			}
		}
	}
	if a.AlienDeath == nil || a.Player == nil || a.Bullet == nil {
		return errors.New("missing death, player or bullet sprite")
	}
	if a.FrameDuration <= 0 {
		return fmt.Errorf("frame duration must be positive, got %d", a.FrameDuration)
	}
	return nil
}

// HitSprite returns the sprite used for a variant's collision box
func (a *Assets) HitSprite(v AlienVariant) *Sprite {
	return a.AlienFrames[v][0]
}

// NewAnimations creates a fresh looping animation per live variant
func (a *Assets) NewAnimations() (map[AlienVariant]*SpriteAnimation, error) {
	anims := make(map[AlienVariant]*SpriteAnimation, len(LiveVariants))
	for _, v := range LiveVariants {
		anim, err := NewSpriteAnimation(a.AlienFrames[v], a.FrameDuration, true)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		anims[v] = anim
	}
	return anims, nil
}

// spriteSheet is the on-disk sprite override format
type spriteSheet struct {
	FrameDuration int                 `yaml:"frame_duration"`
	Sprites       map[string][]string `yaml:"sprites"`
}

// sheetSlots maps sprite sheet names to the asset they replace
func (a *Assets) sheetSlots() map[string]**Sprite {
	return map[string]**Sprite{
		"alien_a0":    &a.AlienFrames[AlienTypeA][0],
		"alien_a1":    &a.AlienFrames[AlienTypeA][1],
		"alien_b0":    &a.AlienFrames[AlienTypeB][0],
		"alien_b1":    &a.AlienFrames[AlienTypeB][1],
		"alien_c0":    &a.AlienFrames[AlienTypeC][0],
		"alien_c1":    &a.AlienFrames[AlienTypeC][1],
		"alien_death": &a.AlienDeath,
		"player":      &a.Player,
		"bullet":      &a.Bullet,
	}
}

// LoadAssets reads a YAML sprite sheet and applies it over the built-in sprites.
// Any malformed sprite rejects the whole sheet.
func LoadAssets(r io.Reader) (*Assets, error) {
	var sheet spriteSheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sheet); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode sprite sheet: %w", err)
	}

	assets := DefaultAssets()
	slots := assets.sheetSlots()
	for name, rows := range sheet.Sprites {
		slot, ok := slots[name]
		if !ok {
			return nil, fmt.Errorf("unknown sprite %q", name)
		}
		sprite, err := ParseSprite(rows...)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", name, err)
		}
		*slot = sprite
	}
	if sheet.FrameDuration != 0 {
		assets.FrameDuration = sheet.FrameDuration
	}

	if err := assets.Validate(); err != nil {
		return nil, err
	}
	return assets, nil
}

// LoadAssetsFile opens path and calls LoadAssets. An empty path returns the defaults.
func LoadAssetsFile(path string) (*Assets, error) {
	if path == "" {
		return DefaultAssets(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	return LoadAssets(f)
}
