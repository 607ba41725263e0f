package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/command"
	"github.com/vyops/vyops/pkg/model"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Manage static routes",
}

var (
	routeDistance    int
	routeDescription string
	routeDisable     bool
)

var routeSetCmd = &cobra.Command{
	Use:   "set <prefix> <next-hop>",
	Short: "Configure a static route",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		route := &model.StaticRoute{
			Prefix:      args[0],
			NextHop:     args[1],
			Distance:    routeDistance,
			Description: routeDescription,
			Disabled:    routeDisable,
		}
		stmts, err := command.StaticRouteCommands(route)
		if err != nil {
			return err
		}
		return executeOrPreview("route set", stmts)
	},
}

var routeDeleteCmd = &cobra.Command{
	Use:   "delete <prefix> [next-hop]",
	Short: "Remove a static route or one of its next hops",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := []string{"protocols", "static", "route", args[0]}
		if len(args) == 2 {
			path = append(path, "next-hop", args[1])
		}
		stmt := command.Delete(path...)
		return executeOrPreview("route delete", []command.Statement{stmt})
	},
}

var routeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List static routes on the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}
		cfg, err := dev.Fetch(context.Background())
		if err != nil {
			return err
		}
		showRoutes(cfg)
		return nil
	},
}

func init() {
	f := routeSetCmd.Flags()
	f.IntVar(&routeDistance, "distance", 0, "administrative distance")
	f.StringVar(&routeDescription, "description", "", "route description")
	f.BoolVar(&routeDisable, "disable", false, "disable the next hop")

	routeCmd.AddCommand(routeSetCmd, routeDeleteCmd, routeListCmd)
	rootCmd.AddCommand(routeCmd)
}
