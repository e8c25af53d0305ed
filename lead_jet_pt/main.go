package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/magneticio/go-common/logging"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/decibelcooper/susyplot"
)

var (
	cfgFile    string
	cpuProfile bool
	xrange     = susyplot.FloatArrayFlags{Array: []float64{0, 1000}}
)

// flagKeys are the flags also settable from the config file and environment.
var flagKeys = []string{"tree", "column", "output", "hist", "title", "nbins", "scale", "progress", "chunk", "plot"}

var rootCmd = &cobra.Command{
	Use:   "lead_jet_pt [options] <root-input-file>",
	Short: "Histogram the leading jet transverse momentum of a susy ntuple",
	Long: `Reads the first entry of a per-event jet p_T branch, rescales it and
fills a fixed binning histogram written to a ROOT file:
  lead_jet_pt input.root
  lead_jet_pt --output out.root --xrange 0 --xrange 500 --nbins 50 input.root
`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}

		cfg, err := newConfig(args[0])
		if err != nil {
			return err
		}

		_, err = susyplot.Run(cfg, os.Stdout)
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	def := susyplot.DefaultConfig()
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.susyplot/config.yaml)")
	flags.BoolVarP(&logging.Verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the working directory")
	flags.String("tree", def.Tree, "name of the input tree")
	flags.String("column", def.Column, "name of the per-event float vector branch")
	flags.String("output", def.Output, "output ROOT file")
	flags.String("hist", def.HistName, "name of the output histogram")
	flags.String("title", def.HistTitle, "histogram title, ROOT style \"title;x label;y label\"")
	flags.Int("nbins", def.NBins, "number of bins")
	flags.Var(&xrange, "xrange", "histogram low and high edges, given twice")
	flags.Float64("scale", def.Scale, "factor applied to the raw value")
	flags.Int64("progress", def.ProgressEvery, "print progress every n events")
	flags.Int64("chunk", def.Chunk, "number of entries decoded at once")
	flags.String("plot", def.Plot, "also draw the histogram to this image file")

	for _, name := range flagKeys {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("low", def.Low)
	viper.SetDefault("high", def.High)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("susyplot")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logging.Error("Can not find home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".susyplot"))
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err == nil {
		logging.Info("Using config file: %v\n", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logging.Error("Config can not be read due to error: %v\n", err)
	}
}

func newConfig(input string) (susyplot.Config, error) {
	cfg := susyplot.Config{
		Input:         input,
		Tree:          viper.GetString("tree"),
		Column:        viper.GetString("column"),
		Output:        viper.GetString("output"),
		HistName:      viper.GetString("hist"),
		HistTitle:     viper.GetString("title"),
		NBins:         viper.GetInt("nbins"),
		Low:           viper.GetFloat64("low"),
		High:          viper.GetFloat64("high"),
		Scale:         viper.GetFloat64("scale"),
		ProgressEvery: viper.GetInt64("progress"),
		Chunk:         viper.GetInt64("chunk"),
		Plot:          viper.GetString("plot"),
	}

	if xrange.Changed() {
		low, high, err := xrange.Range()
		if err != nil {
			return cfg, err
		}
		cfg.Low, cfg.High = low, high
	}

	return cfg, cfg.Validate()
}

// exitCode maps a failed run to the process status. An input file that
// cannot be opened exits with -1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, susyplot.ErrOpen):
		return -1
	default:
		return 1
	}
}

func main() {
	logging.Init(os.Stdout, os.Stderr)

	err := rootCmd.Execute()
	if err != nil {
		logging.Error("%v\n", err)
	}
	os.Exit(exitCode(err))
}
