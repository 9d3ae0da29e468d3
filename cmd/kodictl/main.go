/*
go-kodi
Copyright (c) 2026 The go-kodi Contributors.

This file is part of go-kodi.

go-kodi is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

go-kodi is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with go-kodi.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/davisjam/go-kodi/pkg/config"
	"github.com/davisjam/go-kodi/pkg/helpers"
	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

//nolint:gocyclo // flat flag dispatch
func run() error {
	host := flag.String("host", "", "override configured Kodi host")
	doPlay := flag.String("play", "", "play a file, URL or kodi-* virtual path")
	doPause := flag.Bool("pause", false, "pause playback if playing")
	doResume := flag.Bool("resume", false, "resume playback if paused")
	doToggle := flag.Bool("toggle", false, "toggle play/pause")
	doStop := flag.Bool("stop", false, "stop all active players")
	volume := flag.Int("volume", -1, "set volume (0-100)")
	volumeUp := flag.Bool("volume-up", false, "raise volume one step")
	volumeDown := flag.Bool("volume-down", false, "lower volume one step")
	doStatus := flag.Bool("status", false, "print the currently playing item")
	listArtists := flag.Bool("artists", false, "list library artists")
	listAlbums := flag.Bool("albums", false, "list library albums by artist")
	doListen := flag.Bool("listen", false, "print Kodi notifications until interrupted")
	apiCall := flag.String("api", "", "send raw method[:json-params] and print the result")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		_, _ = fmt.Printf("%s v%s\n", config.AppName, config.AppVersion)
		return nil
	}

	configDir := filepath.Join(xdg.ConfigHome, config.AppName)
	cfg, err := config.NewConfig(configDir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := helpers.InitLogging(filepath.Join(xdg.StateHome, config.AppName), nil); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}
	helpers.SetLogLevel(cfg.DebugLogging())

	if *host != "" {
		cfg.SetKodiHost(*host)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := kodi.NewClient(cfg)
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("kodi is not reachable at %s: %w", client.GetURL(), err)
	}

	switch {
	case *doPlay != "":
		return play(ctx, client, *doPlay)
	case *doPause:
		return client.Pause(ctx)
	case *doResume:
		return client.Resume(ctx)
	case *doToggle:
		return client.PlayPause(ctx)
	case *doStop:
		return client.Stop(ctx)
	case *volume >= 0:
		return client.SetVolume(ctx, *volume)
	case *volumeUp:
		return client.RaiseVolume(ctx)
	case *volumeDown:
		return client.LowerVolume(ctx)
	case *doStatus:
		return status(ctx, client)
	case *listArtists:
		return artists(ctx, client)
	case *listAlbums:
		return albums(ctx, client)
	case *doListen:
		return listen(ctx, cfg)
	case *apiCall != "":
		return rawAPI(ctx, client, *apiCall)
	}

	flag.Usage()
	return nil
}

// play dispatches a path to the matching launcher by scheme.
func play(ctx context.Context, client kodi.KodiClient, path string) error {
	switch {
	case strings.HasPrefix(path, kodi.SchemeKodiMovie+"://"):
		return client.LaunchMovie(ctx, path)
	case strings.HasPrefix(path, kodi.SchemeKodiEpisode+"://"):
		return client.LaunchTVEpisode(ctx, path)
	case strings.HasPrefix(path, kodi.SchemeKodiSong+"://"):
		return client.LaunchSong(ctx, path)
	case strings.HasPrefix(path, kodi.SchemeKodiAlbum+"://"):
		return client.LaunchAlbum(ctx, path)
	case strings.HasPrefix(path, kodi.SchemeKodiArtist+"://"):
		return client.LaunchArtist(ctx, path)
	default:
		return client.LaunchFile(ctx, path)
	}
}

func status(ctx context.Context, client kodi.KodiClient) error {
	item, err := client.GetPlayingItem(ctx)
	if err != nil {
		return err
	}

	props, err := client.GetPlayerProperties(ctx, []string{"speed", "percentage"})
	if err != nil {
		return err
	}

	state := "paused"
	if props.Speed != 0 {
		state = "playing"
	}

	label := item.Label
	if len(item.Artist) > 0 {
		label = item.Artist[0] + " - " + label
	}
	_, _ = fmt.Printf("%s: %s (%.1f%%)\n", state, label, props.Percentage)
	return nil
}

func artists(ctx context.Context, client kodi.KodiClient) error {
	all, err := client.GetArtists(ctx)
	if err != nil {
		return err
	}

	for _, artist := range all {
		_, _ = fmt.Println(artist.Artist)
	}
	return nil
}

func albums(ctx context.Context, client kodi.KodiClient) error {
	idx, err := kodi.BuildLibraryIndex(ctx, client)
	if err != nil {
		return err
	}

	for _, artist := range idx.Artists {
		for _, album := range idx.AlbumsByArtist(artist.Artist) {
			_, _ = fmt.Printf("%s - %s (%d)\n", artist.Artist, album.Label, album.Year)
		}
	}
	return nil
}

func listen(ctx context.Context, cfg *config.Instance) error {
	listener := kodi.NewNotificationListener(cfg.KodiWSURL())
	notifications, err := listener.Listen(ctx)
	if err != nil {
		return err
	}

	for notification := range notifications {
		_, _ = fmt.Printf("%s %s\n", notification.Method, string(notification.Params))
	}
	return nil
}

// rawAPI sends "Namespace.Method" or "Namespace.Method:{json params}".
func rawAPI(ctx context.Context, client kodi.KodiClient, call string) error {
	method, rawParams, _ := strings.Cut(call, ":")

	var params any
	if rawParams != "" {
		if !json.Valid([]byte(rawParams)) {
			return fmt.Errorf("invalid params: %s", rawParams)
		}
		params = json.RawMessage(rawParams)
	}

	result, err := client.APIRequest(ctx, kodi.APIMethod(method), params)
	if err != nil {
		log.Error().Err(err).Msg("api request failed")
		return err
	}

	_, _ = fmt.Println(string(result))
	return nil
}
