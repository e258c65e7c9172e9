// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/models"
)

// unsetBuildValue is what the build scripts leave in place when no linker
// flag was given.
const unsetBuildValue = "N/A"

type appInfoService struct {
	info models.VersionInfo

	logger *logger.Logger
}

// NewAppInfoService reports the linker-injected build version, or the
// configured APP_VERSION when the binary was built without one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" || version == unsetBuildValue {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionInfo{
			Version:     version,
			BuildDate:   setOrEmpty(build.BuildDate()),
			BuildCommit: setOrEmpty(build.BuildCommit()),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return s.info
}

func setOrEmpty(v string) string {
	if v == unsetBuildValue {
		return ""
	}
	return v
}
