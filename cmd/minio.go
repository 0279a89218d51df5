package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"audiokit/config"
	"audiokit/storage"
)

var minioPut string

var minioCmd = &cobra.Command{
	Use:   "minio",
	Short: "Test the MinIO artwork store connection",
	Long:  `Connects to the configured MinIO endpoint, verifies the artwork bucket, and optionally uploads a local artwork file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Connecting to MinIO...")

		cfg := config.Load()
		fmt.Printf("MinIO config: %s, Bucket: %s\n", cfg.MinioEndpoint, cfg.MinioBucket)

		store, err := storage.NewStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		fmt.Println("MinIO connection OK.")

		if err := store.Ping(cmd.Context()); err != nil {
			log.Fatalf("Bucket check failed: %v", err)
		}
		fmt.Println("Bucket check OK.")

		if minioPut != "" {
			data, err := os.ReadFile(minioPut)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", minioPut, err)
			}
			key := "covers/" + filepath.Base(minioPut)
			if err := store.Put(cmd.Context(), key, data, "application/octet-stream"); err != nil {
				log.Fatalf("Upload failed: %v", err)
			}
			fmt.Printf("Uploaded %s as %s.\n", minioPut, key)
		}

		fmt.Println("MinIO test finished.")
	},
}

func init() {
	rootCmd.AddCommand(minioCmd)

	minioCmd.Flags().StringVarP(&minioPut, "put", "p", "", "upload a local artwork file into the bucket")
}
