package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rangepick/rangepick/internal/slider"
)

type calcOptions struct {
	Track       float64
	Screen      float64
	Max         float64
	HandleWidth float64
	ShowLeft    bool
	Start       int
	End         int
	EndSet      bool
	Handle      string
	X           float64
	JSON        bool
}

type calcResult struct {
	Scale       float64 `json:"scale"`
	PaddingLeft float64 `json:"padding_left"`
	Accepted    bool    `json:"accepted"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	LeftOffset  float64 `json:"left_offset"`
	RightOffset float64 `json:"right_offset"`
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Resolve a single drag without the UI",
	Long: `calc lays out a track, places the handles at --start/--end and feeds one
move event for --handle at window coordinate --x. It prints the scale and the
resulting range, or "rejected" when the move would leave the track or cross
the other handle.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		opts := calcOptions{}
		opts.Track, _ = flags.GetFloat64("track")
		opts.Screen, _ = flags.GetFloat64("screen")
		opts.Max, _ = flags.GetFloat64("max")
		opts.HandleWidth, _ = flags.GetFloat64("handle-width")
		opts.ShowLeft, _ = flags.GetBool("show-left")
		opts.Start, _ = flags.GetInt("start")
		opts.End, _ = flags.GetInt("end")
		opts.EndSet = flags.Changed("end")
		opts.Handle, _ = flags.GetString("handle")
		opts.X, _ = flags.GetFloat64("x")
		opts.JSON, _ = flags.GetBool("json")
		if !flags.Changed("screen") {
			opts.Screen = opts.Track
		}
		return runCalc(cmd.OutOrStdout(), opts)
	},
}

func init() {
	calcCmd.Flags().Float64("track", 0, "Track width in pixels")
	calcCmd.Flags().Float64("screen", 0, "Screen width in pixels (default: track)")
	calcCmd.Flags().Float64("max", slider.DefaultMaxValue, "Upper bound of the range")
	calcCmd.Flags().Float64("handle-width", slider.DefaultHandleWidth, "Handle width in pixels")
	calcCmd.Flags().Bool("show-left", false, "Show the start handle")
	calcCmd.Flags().Int("start", 0, "Current start value")
	calcCmd.Flags().Int("end", 0, "Current end value (default: max)")
	calcCmd.Flags().String("handle", "end", "Handle to drag: start or end")
	calcCmd.Flags().Float64("x", 0, "Pointer X in screen coordinates")
	calcCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = calcCmd.MarkFlagRequired("track")
	_ = calcCmd.MarkFlagRequired("x")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(w io.Writer, opts calcOptions) error {
	h, err := slider.ParseHandle(opts.Handle)
	if err != nil {
		return err
	}

	cfg := slider.DefaultConfig()
	cfg.MaxValue = opts.Max
	cfg.HandleWidth = opts.HandleWidth
	cfg.ShowLeftHandle = opts.ShowLeft

	s, err := slider.New(cfg, nil)
	if err != nil {
		return err
	}
	if opts.Track <= cfg.MinTrackWidth() {
		return fmt.Errorf("track width %v must exceed %v", opts.Track, cfg.MinTrackWidth())
	}

	end := opts.End
	if !opts.EndSet {
		end = cfg.MaxEnd()
	}
	if err := s.SetRange(slider.Range{Start: opts.Start, End: end}); err != nil {
		return err
	}
	s.Layout(opts.Track, opts.Screen)

	accepted := s.Drag(h, opts.X)
	ctx, _ := s.ScaleContext()
	st := s.State()
	res := calcResult{
		Scale:       ctx.Scale,
		PaddingLeft: ctx.PaddingLeft,
		Accepted:    accepted,
		Start:       st.Start,
		End:         st.End,
		LeftOffset:  st.LeftOffset,
		RightOffset: st.RightOffset,
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "scale:   %.4f px/unit\n", res.Scale)
	fmt.Fprintf(w, "padding: %.2f px\n", res.PaddingLeft)
	if !accepted {
		fmt.Fprintf(w, "rejected (range stays %d %d)\n", res.Start, res.End)
		return nil
	}
	_, err = fmt.Fprintf(w, "range:   %d %d\n", res.Start, res.End)
	return err
}
