package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"imu-load/controller"
	"imu-load/models"
	"imu-load/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "", "optional path to imuload.yaml")
	videoPath := flag.String("video", "", "path to video-<id>.mp4 (required)")
	profileName := flag.String("profile", models.ProfileHTC1X, "recorder profile name")
	logFile := flag.String("log", "", "optional log file path (stderr is always included)")
	level := flag.String("level", "", "log level override: debug, info, warn, error")
	at := flag.Int64("at", -1, "print the rotation matrix interpolated at this timestamp (ns)")
	align := flag.Bool("align", false, "write streams resampled on a fixed grid as CSV")
	alignMs := flag.Int("align-ms", 0, "alignment step in milliseconds (overrides config)")
	fields := flag.String("fields", "", "comma-separated fields to align (default: config, else all)")
	dump := flag.String("dump", "", "write every reading of one vector/matrix field as CSV")
	outPath := flag.String("out", "", "CSV output file (default stdout)")
	flag.Parse()

	// ── Config ───────────────────────────────────────────────────────
	cfg := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = utils.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(2)
		}
	}
	if *level != "" {
		cfg.Logging.Level = *level
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	minLevel, err := utils.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(minLevel, cfg.Logging.File)
	defer logger.Close()

	if *videoPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	profile, err := cfg.Profile(*profileName)
	if err != nil {
		utils.L().Fatal("%v", err)
	}

	// ── Load ─────────────────────────────────────────────────────────
	session, err := controller.LoadSession(*videoPath, profile)
	if err != nil {
		utils.L().Fatal("load session: %v", err)
	}

	printSummary(os.Stdout, session)

	if *at >= 0 {
		m, err := session.RotationMatrixAtTime(*at)
		if err != nil {
			utils.L().Fatal("rotation at %d: %v", *at, err)
		}
		fmt.Printf("\nrotation at %d (%s):\n", *at, utils.FormatTimestamp(*at))
		for i := 0; i < models.MatrixDim; i++ {
			fmt.Printf("  % .6f % .6f % .6f % .6f\n", m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3))
		}
	}

	if !*align && *dump == "" {
		return
	}

	// ── CSV output ───────────────────────────────────────────────────
	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			utils.L().Fatal("create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	exporter := controller.NewExportController(0)

	if *dump != "" {
		rows, err := exporter.ExportStream(out, session, *dump)
		if err != nil {
			utils.L().Fatal("dump %s: %v", *dump, err)
		}
		utils.L().Info("dumped %d readings of %s", rows, *dump)
	}

	if *align {
		step := cfg.Alignment.StepMs
		if *alignMs > 0 {
			step = *alignMs
		}
		sel := cfg.Alignment.Fields
		if *fields != "" {
			sel = splitFieldList(*fields)
		}
		ac := controller.NewAlignmentController(utils.MillisToNano(int64(step)), sel, cfg.Alignment.ClipToRecording)
		table, err := ac.Align(session)
		if err != nil {
			utils.L().Fatal("%v", err)
		}
		rows, err := exporter.ExportAligned(out, table)
		if err != nil {
			utils.L().Fatal("export aligned: %v", err)
		}
		utils.L().Info("wrote %d aligned rows", rows)
	}
}

// splitFieldList parses the -fields flag, tolerating spaces and empty entries.
func splitFieldList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func printSummary(w io.Writer, s *controller.Session) {
	fmt.Fprintf(w, "session %s  (profile %s)\n", s.ID, s.Profile.Name)
	fmt.Fprintf(w, "metadata: %s\n", s.MetadataDir)
	for _, st := range s.Summary() {
		elapsed := utils.FormatElapsed(st.ElapsedNs)
		if st.Err != nil {
			elapsed = "error: " + st.Err.Error()
		}
		fmt.Fprintf(w, "  %-22s %-15s readings=%-8d elapsed=%s\n", st.Field, st.Kind, st.Readings, elapsed)
	}
}
