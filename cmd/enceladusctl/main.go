package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"enceladus/internal/catalog"
	"enceladus/internal/gsim"
	"enceladus/internal/imt"
	"enceladus/internal/scalerel"
	hazapi "enceladus/pkg/enceladus"
)

const defaultDBPath = "enceladus.db"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "models":
		return runModels(ctx, args[1:])
	case "scalerel":
		return runScaleRel(ctx, args[1:])
	case "coeffs":
		return runCoeffs(ctx, args[1:])
	case "sample":
		return runSample(ctx, args[1:])
	case "gmf":
		return runGMF(ctx, args[1:])
	case "event-sets":
		return runEventSets(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func storeFlags(fs *flag.FlagSet) (storeKind, dbPath *string) {
	storeKind = fs.String("store", catalog.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath = fs.String("db-path", defaultDBPath, "sqlite database path")
	return storeKind, dbPath
}

func newClient(storeKind, dbPath string) (*hazapi.Client, error) {
	return hazapi.New(hazapi.Options{StoreKind: storeKind, DBPath: dbPath})
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Init(ctx); err != nil {
		return err
	}
	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Reset(ctx); err != nil {
		return err
	}
	fmt.Printf("reset store=%s\n", *storeKind)
	return nil
}

func runModels(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("models", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "show model capabilities")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range gsim.ListModels() {
		if !*verbose {
			fmt.Println(name)
			continue
		}
		model, err := gsim.GetModel(name)
		if err != nil {
			return err
		}
		caps := model.Capabilities()
		kinds := make([]string, 0, len(caps.IMTKinds))
		for _, kind := range caps.IMTKinds {
			kinds = append(kinds, kind.String())
		}
		sort.Strings(kinds)
		fmt.Printf("%s region=%q imts=%s stddevs=%d\n",
			name, string(caps.TectonicRegion), strings.Join(kinds, ","), len(caps.StdDevs))
	}
	return nil
}

func runScaleRel(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("scalerel", flag.ContinueOnError)
	mag := fs.Float64("mag", 0, "magnitude to evaluate the median rupture area at")
	rake := fs.Float64("rake", 0, "rake for style-of-faulting dependent relationships")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range scalerel.List() {
		if *mag == 0 {
			fmt.Println(name)
			continue
		}
		rel, err := scalerel.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s mag=%.2f median_area_km2=%.4f\n", name, *mag, rel.MedianArea(*mag, *rake))
	}
	return nil
}

func runCoeffs(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("coeffs", flag.ContinueOnError)
	file := fs.String("file", "", "coefficient table file")
	imtKey := fs.String("imt", "pga", "intensity measure: pga, pgv or a spectral period")
	damping := fs.Float64("damping", imt.DefaultSADamping, "SA damping of the table, percent")
	interpolate := fs.Bool("interpolate", false, "interpolate between tabulated periods")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return usageError("coeffs requires -file")
	}

	text, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	table, err := gsim.ParseCoeffsTable(*damping, string(text))
	if err != nil {
		return err
	}
	m, err := imt.Parse(*imtKey)
	if err != nil {
		return err
	}

	var coeffs gsim.Coeffs
	if *interpolate {
		coeffs, err = table.LookupInterpolated(m)
	} else {
		coeffs, err = table.Lookup(m)
	}
	if err != nil {
		return err
	}

	names := table.Names()
	fmt.Printf("imt=%s\n", m)
	for _, name := range names {
		fmt.Printf("%s=%.10g\n", name, coeffs[name])
	}
	return nil
}

func runSample(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	configPath := fs.String("config", "", "job config YAML")
	seed := fs.Int64("seed", 0, "override the config seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return usageError("sample requires -config")
	}

	cfg, err := LoadJobConfig(*configPath)
	if err != nil {
		return err
	}
	req := cfg.EventSetRequest()
	if *seed != 0 {
		req.Seed = *seed
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.RunEventSet(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("event_set_id=%s events=%d time_span=%.1f seed=%d\n",
		summary.EventSetID, summary.Events, req.TimeSpan, req.Seed)
	return nil
}

func runGMF(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("gmf", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	configPath := fs.String("config", "", "job config YAML")
	eventSetID := fs.String("event-set", "", "stored event set id")
	seed := fs.Int64("seed", 0, "override the config gmf seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return usageError("gmf requires -config")
	}
	if *eventSetID == "" {
		return usageError("gmf requires -event-set")
	}

	cfg, err := LoadJobConfig(*configPath)
	if err != nil {
		return err
	}
	req, err := cfg.GMFRequest(*eventSetID)
	if err != nil {
		return err
	}
	if *seed != 0 {
		req.Seed = *seed
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.ComputeGMF(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("event_set_id=%s field_sets=%d model=%s\n",
		summary.EventSetID, len(summary.FieldSetIDs), req.Model)
	for _, id := range summary.FieldSetIDs {
		fmt.Println(id)
	}
	return nil
}

func runEventSets(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("event-sets", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	id := fs.String("id", "", "show one event set")
	showFields := fs.Bool("fields", false, "list the field sets of the event set")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if *id == "" {
		ids, err := client.ListEventSets(ctx)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("no event sets found")
			return nil
		}
		for _, esID := range ids {
			fmt.Println(esID)
		}
		return nil
	}

	set, ok, err := client.GetEventSet(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("event set not found: %s", *id)
	}
	fmt.Printf("event_set_id=%s created_at=%s time_span=%.1f seed=%d events=%d\n",
		set.ID, set.CreatedAtUTC, set.TimeSpan, set.Seed, len(set.Events))
	for i, event := range set.Events {
		fmt.Printf("event=%d source_id=%s mag=%.2f rake=%.1f hypo_depth=%.1f region=%q\n",
			i, event.SourceID, event.Mag, event.Rake, event.HypoDepth, event.TectonicRegion)
	}
	if *showFields {
		ids, err := client.ListFieldSets(ctx, set.ID)
		if err != nil {
			return err
		}
		for _, fsID := range ids {
			fmt.Printf("field_set_id=%s\n", fsID)
		}
	}
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: enceladusctl <init|reset|models|scalerel|coeffs|sample|gmf|event-sets> [flags]", msg)
}
