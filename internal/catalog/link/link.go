// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package link manages playable/streamable references owned by a parent
title. No uniqueness constraint beyond parent ownership.
*/
package link

import (
	"context"
	"time"
)

// ContentType classifies what the link points at.
type ContentType string

const (
	ContentVideo    ContentType = "video"
	ContentTorrent  ContentType = "torrent"
	ContentSubtitle ContentType = "subtitle"
	ContentImage    ContentType = "image"
)

// IsValid reports whether the content type is a known value.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentVideo, ContentTorrent, ContentSubtitle, ContentImage:
		return true
	default:
		return false
	}
}

// Link is one external reference owned by a title.
type Link struct {
	ID          string      `json:"id"`
	ParentID    string      `json:"parent_id"`
	ContentType ContentType `json:"content_type"`
	LinkType    string      `json:"link_type,omitempty"`

	// Quality is a multi-valued label set, e.g. ["1080p","HDR"].
	Quality []string `json:"quality,omitempty"`

	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository defines the persistence contract for links.
type Repository interface {
	Create(context context.Context, link *Link) error
	FindByID(context context.Context, id string) (*Link, error)

	// ListByTitle returns a title's links, oldest first.
	ListByTitle(context context.Context, titleID string) ([]*Link, error)

	Update(context context.Context, link *Link) error
	Delete(context context.Context, id string) error

	// DeleteByTitle bulk-removes every link owned by a title.
	DeleteByTitle(context context.Context, titleID string) error
}
