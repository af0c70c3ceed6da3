package handler

import (
	"aaelink/internal/app/storage"
	"aaelink/internal/configs"
)

// AppDeps bundles what the HTTP handlers need. It is built once in main.
type AppDeps struct {
	Config         *configs.AppConfig
	StorageService storage.StorageService
}
