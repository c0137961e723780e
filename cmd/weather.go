package cmd

import (
	"fmt"
	"time"

	"sipli/internal/cli"
	"sipli/internal/goal"
	"sipli/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagWeatherTemp      float64
	flagWeatherHeatIndex float64
	flagWeatherClear     bool
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Record the current weather for goal adjustment",
	Long:  "Records a weather reading from an external provider. Heat above 24°C raises the daily goal.",
	RunE:  runWeather,
}

func init() {
	weatherCmd.Flags().Float64VarP(&flagWeatherTemp, "temp", "t", 0, "Temperature in °C")
	weatherCmd.Flags().Float64Var(&flagWeatherHeatIndex, "heat-index", 0, "Heat index in °C (optional)")
	weatherCmd.Flags().BoolVar(&flagWeatherClear, "clear", false, "Forget the last weather reading")
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, _ []string) error {
	st := openStore()

	if flagWeatherClear {
		if err := st.ClearWeather(); err != nil {
			return err
		}
		fmt.Println("  Weather reading cleared.")
		return nil
	}

	if !cmd.Flags().Changed("temp") {
		state := st.LoadOrDefault()
		if state.LastWeather == nil {
			fmt.Println("  No weather recorded. `sipli weather --temp 31` to set one.")
			return nil
		}
		w := state.LastWeather
		fmt.Printf("  %.1f°C", w.TemperatureC)
		if w.HeatIndexC > 0 {
			fmt.Printf(" (feels like %.1f°C)", w.HeatIndexC)
		}
		fmt.Printf(", recorded %s\n", w.CapturedAt.Local().Format("Jan 2 15:04"))
		return nil
	}

	w := model.WeatherSnapshot{
		TemperatureC: flagWeatherTemp,
		HeatIndexC:   flagWeatherHeatIndex,
		CapturedAt:   time.Now(),
	}
	if err := st.SetWeather(w); err != nil {
		return err
	}

	state := st.LoadOrDefault()
	bd := goal.Daily(state.Profile, state.LastWeather, state.LastWorkout)
	fmt.Printf("  Recorded %.1f°C.", w.TemperatureC)
	if bd.WeatherAdjustmentML > 0 {
		fmt.Printf(" Goal raised by %s.", cli.FormatVolume(bd.WeatherAdjustmentML, state.Profile.UnitSystem))
	}
	fmt.Println()

	return nil
}
