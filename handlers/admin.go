package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/Lucifer06sai/saiflix/models"
)

// ListUsers returns every account with the credential field stripped.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := a.store.AllUsers()

	publicUsers := make([]models.PublicUser, 0, len(users))
	for i := range users {
		publicUsers = append(publicUsers, users[i].Public())
	}

	respondJSON(w, http.StatusOK, publicUsers)
}

type memoryInfo struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
}

type systemInfo struct {
	Platform    string     `json:"platform"`
	Owner       string     `json:"owner"`
	Copyright   string     `json:"copyright"`
	License     string     `json:"license"`
	Version     string     `json:"version"`
	Environment string     `json:"environment"`
	Uptime      float64    `json:"uptime"`
	Memory      memoryInfo `json:"memory"`
	Goroutines  int        `json:"goroutines"`
}

// SystemInfo reports static platform metadata plus process uptime and
// memory usage.
func (a *API) SystemInfo(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	respondJSON(w, http.StatusOK, systemInfo{
		Platform:    "SAIFLIX",
		Owner:       "Sai",
		Copyright:   "© 2024 SAIFLIX. Free & Open Source (MIT License)",
		License:     "MIT License - Free for everyone!",
		Version:     "1.0.0",
		Environment: a.env,
		Uptime:      time.Since(a.startedAt).Seconds(),
		Memory: memoryInfo{
			Alloc:      mem.Alloc,
			TotalAlloc: mem.TotalAlloc,
			Sys:        mem.Sys,
			NumGC:      mem.NumGC,
		},
		Goroutines: runtime.NumGoroutine(),
	})
}
