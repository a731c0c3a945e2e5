// Command cldnn-bench builds a topology, compiles it into a Program, runs
// it against the reference device for a number of iterations, and prints a
// lint + profiling report. Grounded on samples/relu/main.go's
// engine/driver/device construction followed by a domain call and
// atexit.Exit(0); the command tree itself is cobra/pflag/viper, the rest
// of the pack's CLI stack.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/cldnngo/cldnn/device/simdevice"
	"github.com/cldnngo/cldnn/diagnostics"
	"github.com/cldnngo/cldnn/engine"
	"github.com/cldnngo/cldnn/network"
	"github.com/cldnngo/cldnn/program"
	"github.com/cldnngo/cldnn/tensor"
	"github.com/cldnngo/cldnn/topology"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cldnn-bench",
		Short: "Compile and run a compute-graph topology against the reference device",
		RunE:  runBench,
	}

	flags := cmd.Flags()
	flags.String("topology", "", "path to a topology YAML file (built-in sample if unset)")
	flags.Int("iterations", 1, "number of times to Execute the network")
	flags.Bool("optimize-data", true, "enable in-place (can_be_optimized) graph optimizations")
	flags.String("mode", "in-order", "submission mode: in-order or ooo-barrier")
	flags.Bool("profile", true, "collect and print a per-node execution profile")
	flags.String("cache", "", "path to a sqlite compiled-kernel cache (disabled if unset)")
	flags.String("config", "", "optional config file layering the flags above")

	for _, name := range []string{"topology", "iterations", "optimize-data", "mode", "profile", "cache", "config"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

func runBench(cmd *cobra.Command, _ []string) error {
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	runID := xid.New()
	fmt.Fprintf(cmd.OutOrStdout(), "cldnn-bench run %s\n", runID)

	top, err := loadTopology(viper.GetString("topology"))
	if err != nil {
		return err
	}

	mode, err := parseSubmissionMode(viper.GetString("mode"))
	if err != nil {
		return err
	}

	dev := simdevice.NewBuilder().WithEngine(sim.NewSerialEngine()).Build("Device")

	var cache *engine.Cache
	if path := viper.GetString("cache"); path != "" {
		cache, err = engine.OpenCache(path)
		if err != nil {
			return fmt.Errorf("opening compiled-kernel cache: %w", err)
		}
		atexit.Register(func() { _ = cache.Close() })
	}

	eng := engine.NewBuilder().
		WithContext(dev).
		WithCache(cache).
		WithOptions(engine.Options{
			Mode:      mode,
			Profiling: viper.GetBool("profile"),
			CachePath: viper.GetString("cache"),
		}).
		Build()

	prog, err := program.Build(eng, top, program.BuildOptions{
		OptimizeData: viper.GetBool("optimize-data"),
	})
	if err != nil {
		return fmt.Errorf("building program: %w", err)
	}

	net, err := network.New(eng, prog, top)
	if err != nil {
		return fmt.Errorf("constructing network: %w", err)
	}

	inputs, err := syntheticInputs(top)
	if err != nil {
		return err
	}

	iterations := viper.GetInt("iterations")
	if iterations < 1 {
		iterations = 1
	}
	for i := 0; i < iterations; i++ {
		if _, err := net.Execute(inputs); err != nil {
			return fmt.Errorf("executing network (iteration %d): %w", i, err)
		}
	}

	report := &diagnostics.Report{
		LintIssues: diagnostics.Lint(top),
		Profile:    eng.Profile(),
	}
	report.WriteReport(cmd.OutOrStdout())

	return nil
}

func parseSubmissionMode(s string) (engine.SubmissionMode, error) {
	switch s {
	case "", "in-order":
		return engine.InOrder, nil
	case "ooo-barrier":
		return engine.OutOfOrderWithBarrier, nil
	default:
		return 0, fmt.Errorf("unknown submission mode %q", s)
	}
}

// loadTopology reads path as a topology YAML file, or falls back to a
// small built-in sample (two inputs, an eltwise sum, and a ReLU) when path
// is empty so the command runs out of the box with no fixtures on disk.
func loadTopology(path string) (*topology.Topology, error) {
	if path != "" {
		return topology.LoadYAML(path)
	}
	return builtinSampleTopology()
}

func builtinSampleTopology() (*topology.Topology, error) {
	top := topology.New()
	shape := tensor.NewSimpleLayout(tensor.Bfyx, 1, 1, 1, 4)

	if err := top.Add(topology.PrimitiveDescription{
		ID: "a", Kind: topology.KindInputLayout,
		Params: topology.InputLayoutParams{Layout: shape, Type: tensor.F32},
	}); err != nil {
		return nil, err
	}
	if err := top.Add(topology.PrimitiveDescription{
		ID: "b", Kind: topology.KindInputLayout,
		Params: topology.InputLayoutParams{Layout: shape, Type: tensor.F32},
	}); err != nil {
		return nil, err
	}
	if err := top.Add(topology.PrimitiveDescription{
		ID: "sum", Kind: topology.KindEltwise, Inputs: []string{"a", "b"},
		Params: topology.EltwiseParams{Mode: topology.EltwiseSum},
	}); err != nil {
		return nil, err
	}
	if err := top.Add(topology.PrimitiveDescription{
		ID: "relu", Kind: topology.KindActivation, Inputs: []string{"sum"},
		Params: topology.ActivationParams{ActivationDesc: topology.ActivationDesc{Func: topology.ActivationReLU}},
	}); err != nil {
		return nil, err
	}
	return top, nil
}

// syntheticInputs fills every input_layout node of top with deterministic
// pseudo-random data, so the command has something to feed Network.Execute
// without requiring the caller to supply fixtures.
func syntheticInputs(top *topology.Topology) ([]network.ExternalInput, error) {
	rng := rand.New(rand.NewSource(1))

	var inputs []network.ExternalInput
	for _, id := range top.IDs() {
		desc, _ := top.Get(id)
		if desc.Kind != topology.KindInputLayout {
			continue
		}
		p, ok := desc.Params.(topology.InputLayoutParams)
		if !ok {
			continue
		}

		mem := tensor.Allocate(p.Layout, p.Type)
		dims := p.Layout.Dims
		for b := 0; b < dims.Size[tensor.AxisBatch]; b++ {
			for f := 0; f < dims.Size[tensor.AxisFeature]; f++ {
				for y := 0; y < dims.Size[tensor.AxisY]; y++ {
					for x := 0; x < dims.Size[tensor.AxisX]; x++ {
						tensor.WriteF32(mem, b, f, y, x, rng.Float32())
					}
				}
			}
		}
		inputs = append(inputs, network.ExternalInput{ID: id, Memory: mem})
	}
	return inputs, nil
}
