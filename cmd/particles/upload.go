package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/1siamBot/particle-gesture/engine/core"
	"github.com/1siamBot/particle-gesture/engine/imagecloud"
)

var errNoFile = errors.New("no file dropped")

// firstFile reads the first regular file in a dropped file system.
func firstFile(fsys fs.FS) (string, []byte, error) {
	var name string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			name = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("dropped files: %w", err)
	}
	if name == "" {
		return "", nil, errNoFile
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return name, nil, fmt.Errorf("read %s: %w", name, err)
	}
	return name, data, nil
}

// publisher receives finished clouds; the engine in production.
type publisher interface {
	PublishCloud(*imagecloud.Cloud)
	Bus() *core.EventBus
}

// sampleAsync decodes and samples off the update goroutine, then
// publishes the finished cloud or reports the failure.
func sampleAsync(dst publisher, name string, load func() (*imagecloud.Cloud, error)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		cloud, err := load()
		if err != nil {
			dst.Bus().Emit(core.Event{Type: core.EvtImageFailed, Payload: err})
			return
		}
		log.Printf("Sampled %s: %d points", name, cloud.Len())
		dst.PublishCloud(cloud)
	}()
	return done
}
