// Package pack publishes a normalized card folder as an OCI artifact in a
// local image layout, one layer per card image.
package pack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	v1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/sirupsen/logrus"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/oci"
	"oras.land/oras-go/v2/errdef"

	"github.com/arcanaland/cardrename/internal/deck"
)

const (
	ArtifactType    = "application/vnd.card-deck"
	ConfigMediaType = "application/vnd.card-deck.config+json"

	// AnnotationCard carries the canonical stem of a layer.
	AnnotationCard = "io.github.card-deck.card"
)

var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// deckConfig is the manifest config blob.
type deckConfig struct {
	Cards []string `json:"cards"`
}

// MediaType returns the layer media type for a file name.
func MediaType(name string) string {
	if mt, ok := mediaTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return "application/octet-stream"
}

// SaveLayout writes every canonical card of d into the OCI layout at
// layoutDir and tags the manifest. It returns the manifest descriptor.
func SaveLayout(ctx context.Context, d *deck.Deck, layoutDir, tag string, log logrus.FieldLogger) (v1.Descriptor, error) {
	stems := d.Stems()
	if len(stems) == 0 {
		return v1.Descriptor{}, fmt.Errorf("no canonical card images in %s", d.Path)
	}

	store, err := oci.New(layoutDir)
	if err != nil {
		return v1.Descriptor{}, fmt.Errorf("creating OCI layout at %s: %w", layoutDir, err)
	}

	var layers []v1.Descriptor
	for _, stem := range stems {
		_, path, err := d.GetCard(stem)
		if err != nil {
			return v1.Descriptor{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return v1.Descriptor{}, fmt.Errorf("reading card image %s: %w", path, err)
		}

		filename := filepath.Base(path)
		desc, err := pushBlob(ctx, store, MediaType(filename), data)
		if err != nil {
			return v1.Descriptor{}, fmt.Errorf("pushing layer %s: %w", stem, err)
		}
		desc.Annotations = map[string]string{
			v1.AnnotationTitle: filename,
			AnnotationCard:     stem,
		}
		layers = append(layers, desc)
		log.WithFields(logrus.Fields{"card": stem, "file": filename, "bytes": len(data)}).Debug("prepared layer")
	}

	configData, err := json.Marshal(deckConfig{Cards: stems})
	if err != nil {
		return v1.Descriptor{}, fmt.Errorf("encoding config: %w", err)
	}
	configDesc, err := pushBlob(ctx, store, ConfigMediaType, configData)
	if err != nil {
		return v1.Descriptor{}, fmt.Errorf("pushing config: %w", err)
	}

	packOpts := oras.PackManifestOptions{
		Layers:           layers,
		ConfigDescriptor: &configDesc,
	}
	manifestDesc, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return v1.Descriptor{}, fmt.Errorf("packing manifest: %w", err)
	}

	if err := store.Tag(ctx, manifestDesc, tag); err != nil {
		return v1.Descriptor{}, fmt.Errorf("tagging manifest: %w", err)
	}
	return manifestDesc, nil
}

// pushBlob pushes data unless a blob with the same digest is already stored.
// Identical card images share one blob.
func pushBlob(ctx context.Context, store *oci.Store, mediaType string, data []byte) (v1.Descriptor, error) {
	desc := content.NewDescriptorFromBytes(mediaType, data)
	exists, err := store.Exists(ctx, desc)
	if err != nil {
		return v1.Descriptor{}, err
	}
	if exists {
		return desc, nil
	}
	if err := store.Push(ctx, desc, bytes.NewReader(data)); err != nil && !errors.Is(err, errdef.ErrAlreadyExists) {
		return v1.Descriptor{}, err
	}
	return desc, nil
}
