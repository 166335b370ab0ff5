package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/otoz-ai/salesdesk/desk"
	"github.com/otoz-ai/salesdesk/inventory"
	"github.com/otoz-ai/salesdesk/observability"
	"github.com/otoz-ai/salesdesk/pricing"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to desk config JSON file (optional)")
		csvPath    = flag.String("inventory", "", "Path to inventory CSV file (overrides config)")
		seed       = flag.Int64("seed", 0, "Demo inventory seed (overrides config)")
		vehicleID  = flag.String("vehicle", "", "Vehicle ID to negotiate; defaults to the first listing")
		message    = flag.String("message", "", "Send a single message and exit")
		listOnly   = flag.Bool("list", false, "Print the inventory and exit")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	// The registry's "slog" entry was built before SetDefault took effect.
	observability.RegisterObserver("slog", observability.NewSlogObserver(slog.Default()))

	cfg := desk.DefaultConfig()
	if *configFile != "" {
		loaded, err := desk.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *csvPath != "" {
		cfg.Inventory.Kind = inventory.KindCSV
		cfg.Inventory.Path = *csvPath
	}
	if *seed != 0 {
		cfg.Inventory.Seed = *seed
	}

	registerBuiltinSkills()

	d, err := desk.New(&cfg)
	if err != nil {
		log.Fatalf("Failed to create sales desk: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	vehicles, err := d.Vehicles(ctx)
	if err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}
	if len(vehicles) == 0 {
		log.Fatal("Inventory is empty")
	}

	if *listOnly {
		for _, v := range vehicles {
			fmt.Printf("%s  %-30s %s\n", v.ID, v.DisplayName(), pricing.FormatYen(v.BasePrice))
		}
		return
	}

	id := *vehicleID
	if id == "" {
		id = vehicles[0].ID
	}

	vehicle, err := d.SelectVehicle(ctx, id)
	if err != nil {
		log.Fatalf("Failed to select vehicle: %v", err)
	}
	fmt.Printf("Negotiating: %s — listed at %s\n", vehicle.DisplayName(), pricing.FormatYen(vehicle.BasePrice))

	if *message != "" {
		reply, err := d.Handle(ctx, *message)
		if err != nil {
			log.Fatalf("Desk turn failed: %v", err)
		}
		fmt.Println(reply.Text)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		text := scanner.Text()
		if text == "" {
			fmt.Print("> ")
			continue
		}

		reply, err := d.Handle(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			fmt.Print("> ")
			continue
		}
		fmt.Println(reply.Text)
		fmt.Print("> ")
	}
}
