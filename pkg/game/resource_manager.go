package game

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// PlaceholderSize is the edge length of the generated stand-in image.
const PlaceholderSize = 48

// ResourceManager is responsible for centralized management of game resources.
// It loads images and sound effects from a file system (the embedded assets
// or a directory on disk) and caches them so each asset is decoded once.
//
// Image and sound IDs are resolved through a ResourceConfig. An image that
// cannot be resolved or decoded is replaced by a solid placeholder so that a
// missing asset never stops a session.
//
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	fsys         fs.FS
	audioContext *audio.Context
	config       *ResourceConfig

	imageCache       map[string]*ebiten.Image // path -> Image
	placeholderCache map[string]*ebiten.Image // ID -> placeholder
	soundCache       map[string]*audio.Player // path -> Player
}

// NewResourceManager creates a ResourceManager reading from fsys.
// audioContext may be nil, in which case sound loading always fails.
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:             fsys,
		audioContext:     audioContext,
		config:           &ResourceConfig{Images: map[string]string{}, Sounds: map[string]string{}},
		imageCache:       make(map[string]*ebiten.Image),
		placeholderCache: make(map[string]*ebiten.Image),
		soundCache:       make(map[string]*audio.Player),
	}
}

// LoadResourceConfig reads and installs the ID -> path mapping.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return err
	}
	rm.config = cfg
	return nil
}

// SetResourceConfig installs an already parsed configuration.
func (rm *ResourceManager) SetResourceConfig(cfg *ResourceConfig) {
	if cfg != nil {
		rm.config = cfg
	}
}

// LoadImage loads an image file and caches it for future use.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[p]; exists {
		return cached, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// LoadImageByID loads an image using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	p, ok := rm.config.ImagePath(resourceID)
	if !ok {
		return nil, fmt.Errorf("image resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(p)
}

// ImageOrPlaceholder returns the image for resourceID, or a solid square
// whose color is derived from the ID when the image is unavailable.
func (rm *ResourceManager) ImageOrPlaceholder(resourceID string) *ebiten.Image {
	img, err := rm.LoadImageByID(resourceID)
	if err == nil {
		return img
	}

	if placeholder, ok := rm.placeholderCache[resourceID]; ok {
		return placeholder
	}

	log.Printf("[ResourceManager] Using placeholder for %q: %v", resourceID, err)
	placeholder := ebiten.NewImage(PlaceholderSize, PlaceholderSize)
	placeholder.Fill(PlaceholderColor(resourceID))
	rm.placeholderCache[resourceID] = placeholder
	return placeholder
}

// PlaceholderColor derives a stable opaque color from a resource ID.
func PlaceholderColor(resourceID string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(resourceID))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(sum>>16) | 0x40,
		G: uint8(sum>>8) | 0x40,
		B: uint8(sum) | 0x40,
		A: 0xff,
	}
}

// LoadSoundEffect loads a one-shot sound effect (WAV, OGG Vorbis or MP3).
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	if cached, exists := rm.soundCache[p]; exists {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}

	data, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	var stream io.Reader
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(reader)
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", p, err)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.soundCache[p] = player
	return player, nil
}

// LoadSoundByID loads a sound effect using its resource ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	p, ok := rm.config.SoundPath(resourceID)
	if !ok {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}
	return rm.LoadSoundEffect(p)
}
