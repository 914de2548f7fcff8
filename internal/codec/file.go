package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/pcscene/internal/anim"
	"github.com/Faultbox/pcscene/internal/logger"
	"github.com/Faultbox/pcscene/internal/scene"
)

// Save writes doc to path in the format implied by its extension, creating
// parent directories as needed.
func Save(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(doc, f)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.Debug("scene document written",
		zap.String("path", path),
		zap.String("format", string(f)),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// SaveScene serializes root plus clips and writes them to path.
func SaveScene(path string, root *scene.Root, clips *anim.Library) error {
	doc := Serialize(root)
	doc.Animations = ClipsToDocs(clips)
	return Save(path, doc)
}

// LoadScene reads path and builds a fresh graph and clip library.
func LoadScene(path string) (*scene.Root, *anim.Library, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	root, err := Deserialize(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	lib, err := ClipsFromDocs(doc.Animations)
	if err != nil {
		root.Dispose()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, lib, nil
}
