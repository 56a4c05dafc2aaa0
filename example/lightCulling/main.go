package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/scalar"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultScene = `
workers: 2
volumes:
  - {id: floor, min: [-20, -1, -20], max: [20, 0, 20]}
  - {id: crate, min: [0, 0, 0], max: [1, 1, 1]}
  - {id: pillar, min: [4, 0, 4], max: [5, 6, 5]}
  - {id: shelf, min: [-6, 2, -1], max: [-3, 2.5, 1]}
lights:
  - {id: lamp, position: [0.5, 2, 0.5], radius: 1.5, color: [1, 0.9, 0.7]}
  - {id: torch, position: [-8, 2, 0], radius: 2, color: [1, 0.4, 0.1], target: [8, 2, 4], speed: 4}
  - {id: glow, position: [6.4, 6.4, 6.4], radius: 1.5, color: [0.2, 0.4, 1]}
`

var (
	sceneFile string
	workers   int
	frames    int
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lightCulling",
		Short: "Cull a scene of point lights against bounding volumes",
		Long: `Loads a scene of bounding volumes and point lights, then reports for a few
frames which volumes each light reaches. Moving lights step towards their target
between frames, producing enter and exit events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return run(logger)
		},
	}

	rootCmd.Flags().StringVar(&sceneFile, "scene", "", "YAML scene file (default is a built-in scene)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "number of culling goroutines (default is the scene's value)")
	rootCmd.Flags().IntVar(&frames, "frames", 5, "number of frames to cull")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return config.Build()
}

func openScene(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(strings.NewReader(defaultScene)), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	return f, nil
}

func run(logger *zap.Logger) error {
	r, err := openScene(sceneFile)
	if err != nil {
		return err
	}
	defer r.Close()

	config, err := LoadSceneConfig(r)
	if err != nil {
		return err
	}
	scene, moving, err := config.Build()
	if err != nil {
		return err
	}
	if workers > 0 {
		scene.Workers = workers
	}

	if bounds, ok := scene.Bounds(); ok {
		logger.Info("scene loaded",
			zap.Int("volumes", len(scene.Volumes)),
			zap.Int("lights", len(scene.Lights)),
			zap.Float32s("min", bounds.Min[:]),
			zap.Float32s("max", bounds.Max[:]),
			zap.Float32("area", bounds.Area()),
		)
	}

	subscribeEvents(logger, &scene.Events)

	for frame := 0; frame < frames; frame++ {
		results := scene.Cull()

		for _, result := range results {
			ids := make([]string, 0, len(result.Volumes))
			for _, volume := range result.Volumes {
				ids = append(ids, fmt.Sprint(volume.Id))

				intensity := Intensity(result.Light, volume)
				logger.Debug("volume lit",
					zap.Int("frame", frame),
					zap.Any("light", result.Light.Id),
					zap.Any("volume", volume.Id),
					zap.Float32("intensity", intensity),
					zap.Any("tint", result.Light.Color.Scale(intensity)),
				)
			}

			logger.Info("light culled",
				zap.Int("frame", frame),
				zap.Any("light", result.Light.Id),
				zap.Strings("volumes", ids),
			)
		}

		for _, m := range moving {
			m.Step()
		}
	}

	return nil
}

func subscribeEvents(logger *zap.Logger, events *prism.Events) {
	events.Subscribe(prism.LIGHT_ENTER, func(event prism.Event) {
		e := event.(prism.LightEnterEvent)
		logger.Info("light enter", zap.Any("light", e.Light.Id), zap.Any("volume", e.Volume.Id))
	})
	events.Subscribe(prism.LIGHT_STAY, func(event prism.Event) {
		e := event.(prism.LightStayEvent)
		logger.Debug("light stay", zap.Any("light", e.Light.Id), zap.Any("volume", e.Volume.Id))
	})
	events.Subscribe(prism.LIGHT_EXIT, func(event prism.Event) {
		e := event.(prism.LightExitEvent)
		logger.Info("light exit", zap.Any("light", e.Light.Id), zap.Any("volume", e.Volume.Id))
	})
}

// Intensity is a linear falloff from the light position to the closest
// point of the volume, 1 inside the volume and 0 at the edge of the range.
func Intensity(light *prism.Light, volume *prism.Volume) float32 {
	if light.Radius <= 0 {
		return 0
	}

	closest := light.Position.ClampedBetween(volume.Bounds.Min, volume.Bounds.Max)
	distance := closest.Sub(light.Position).Len()

	return scalar.ClampUnit(1 - distance/light.Radius)
}
