package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryomx12/farmstand/internal/config"
	"github.com/bryomx12/farmstand/internal/economy"
)

var flagExport bool

var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Show produce prices and the upgrade catalog",
	Long: `Print the farm's produce, what each item sells for, how fast stations
replenish, and the upgrades the shop offers.

The almanac reflects the active config: pass --config to inspect a custom
farm, or --export to print the default config YAML as a starting point.

Examples:
  farmstand almanac
  farmstand almanac --config ./my-farm.yaml
  farmstand almanac --export > my-farm.yaml`,
	Run: runAlmanac,
}

func init() {
	almanacCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	almanacCmd.Flags().BoolVar(&flagExport, "export", false, "Print the default config YAML and exit")
}

func runAlmanac(cmd *cobra.Command, args []string) {
	if flagExport {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadFarm(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultFarmConfig()
	}

	rules := cfg.Rules.ToRules()

	fmt.Println("Produce")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-5s  %s\n", "Item", "Type", "Price", "Replenish")
	fmt.Printf("  %-8s  %-6s  %-5s  %s\n", "----", "----", "-----", "---------")
	for _, item := range economy.AllItems() {
		kind := "Crop"
		if item.Category() == economy.CategoryAnimal {
			kind = "Animal"
		}
		price, ok := rules.Rewards[item]
		if !ok {
			price = rules.FallbackReward
		}
		secs := float64(cfg.Stations.CooldownFor(item)) / 60.0
		fmt.Printf("  %-8s  %-6s  %-5d  %.1fs\n", item.Title(), kind, price, secs)
	}

	fmt.Println()
	fmt.Println("Upgrades")
	fmt.Println()
	fmt.Printf("  %-14s  %-18s  %-5s  %s\n", "ID", "Upgrade", "Cost", "Unlocks")
	fmt.Printf("  %-14s  %-18s  %-5s  %s\n", "--", "-------", "----", "-------")
	for _, up := range cfg.Shop.ToCatalog() {
		unlocks := up.Unlock.Title()
		if up.Kind == economy.UpgradeCapacity {
			unlocks = fmt.Sprintf("Basket slot %d", up.Capacity)
		}
		fmt.Printf("  %-14s  %-18s  %-5d  %s\n", up.ID, up.Label, up.Cost, unlocks)
	}

	fmt.Println()
	fmt.Printf("Season: %d days, %d customers a day, basket holds %d.\n",
		cfg.Season.Days, rules.CustomersPerDay, rules.MaxCapacity)

	starting := append([]economy.Item{}, rules.StartingAnimals...)
	starting = append(starting, rules.StartingCrops...)
	if len(starting) > 0 {
		fmt.Printf("You start with: ")
		for i, item := range starting {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(item.Title())
		}
		fmt.Println(".")
	}
}
