package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"audiokit/cache"
	"audiokit/config"
)

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Test the redis artwork cache connection",
	Long:  `Connects to the configured redis instance and runs a basic set/get/del round trip.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Testing redis connection...")

		cfg := config.Load()
		fmt.Printf("Redis config: %s:%s, DB: %d\n", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)

		if err := cache.ConnectRedis(cfg); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		fmt.Println("Redis connection OK.")

		if err := cache.TestRedis(); err != nil {
			log.Fatalf("Redis round trip failed: %v", err)
		}
		fmt.Println("Redis round trip OK.")

		if err := cache.CloseRedis(); err != nil {
			log.Printf("Error closing redis connection: %v", err)
		}
		fmt.Println("Redis test finished, connection closed.")
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
