// export_cloud writes a particle layout to a glTF point cloud so it can be
// inspected in any glTF viewer.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/1siamBot/particle-gesture/engine/config"
	"github.com/1siamBot/particle-gesture/engine/core"
	"github.com/1siamBot/particle-gesture/engine/export"
	"github.com/1siamBot/particle-gesture/engine/imagecloud"
)

func main() {
	d := config.Default()
	shapeName := flag.String("shape", d.Shape, "Shape to export")
	count := flag.Int("count", d.ParticleCount, "Number of particles")
	fill := flag.Bool("fill", d.UseInnerParticles, "Fill shape interiors")
	color1 := flag.String("color1", d.Color1, "First colour")
	color2 := flag.String("color2", d.Color2, "Second colour")
	imagePath := flag.String("image", "", "Image to sample (implies -shape custom-image)")
	seed := flag.Int64("seed", 1, "Random seed (0 = time based)")
	out := flag.String("out", "cloud.glb", "Output file (.glb or .gltf)")
	flag.Parse()

	cfg := d
	cfg.Shape = *shapeName
	cfg.ParticleCount = *count
	cfg.UseInnerParticles = *fill
	cfg.Color1, cfg.Color2 = *color1, *color2

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	eng, err := core.NewEngine(cfg, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *imagePath != "" {
		cloud, err := imagecloud.Load(*imagePath, imagecloud.DefaultOptions())
		if err != nil {
			fmt.Fprintf(os.Stderr, "image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sampled %s: %d points\n", *imagePath, cloud.Len())
		eng.PublishCloud(cloud)
		eng.HandleEvents()
	}

	name := eng.Shape().String()
	if err := export.WritePoints(*out, name, eng.Positions(), eng.Colors()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d %s points to %s\n", eng.Set().Len(), name, *out)
}
