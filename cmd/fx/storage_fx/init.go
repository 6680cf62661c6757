package storage_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"sekahub/pkg/storage"
)

var Module = fx.Provide(provideUploader)

func provideUploader() storage.Uploader {
	uploader, err := storage.NewCloudinaryUploader(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Failed to initialize Cloudinary uploader: %v", err)
		return nil
	}
	return uploader
}
