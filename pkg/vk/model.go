package vk

import (
	"fmt"
	"strings"
)

// Audio represents one audio record of the catalog.
// Instances are created fresh from each decoded reply and owned by the caller.
type Audio struct {
	// ID is the audio identifier, unique within its owner.
	ID uint64 `json:"aid"`
	// OwnerID identifies the list holding the audio; negative denotes a community.
	OwnerID int64 `json:"owner_id"`
	// Artist is the performer name.
	Artist string `json:"artist"`
	// Title is the track title.
	Title string `json:"title"`
	// Duration is the track length in seconds.
	Duration uint32 `json:"duration"`
	// LyricsID references the track lyrics, zero when the track has none.
	LyricsID uint64 `json:"lyrics_id"`
	// AlbumID references the album the audio is filed under, zero when none.
	AlbumID uint64 `json:"album"`
	// URL is the playback URL.
	URL string `json:"url"`
}

// CompositeID returns the audio's composite identifier in the "{owner_id}_{audio_id}" form
// accepted by id-sequence parameters.
func (a *Audio) CompositeID() string {
	return fmt.Sprintf("%d_%d", a.OwnerID, a.ID)
}

// AudioAlbum represents one audio album record.
type AudioAlbum struct {
	// ID is the album identifier.
	ID uint64 `json:"album_id"`
	// OwnerID identifies the album's owner; negative denotes a community.
	OwnerID int64 `json:"owner_id"`
	// Title is the album title.
	Title string `json:"title"`
}

// Lyrics represents the text of one track, newline-delimited.
type Lyrics struct {
	// ID is the lyrics identifier.
	ID uint64 `json:"lyrics_id"`
	// Text is the lyrics body.
	Text string `json:"text"`
}

// User is the subset of a user record the audio section returns:
// identifying fields plus, in broadcast-list replies, the track
// the user is currently broadcasting.
type User struct {
	// ID is the user identifier.
	ID uint64 `json:"id"`
	// FirstName is the user's first name.
	FirstName string `json:"first_name"`
	// LastName is the user's last name.
	LastName string `json:"last_name"`
	// Name is the combined name form some replies carry instead of the split fields.
	Name string `json:"name"`
	// ScreenName is the short address of the user's page.
	ScreenName string `json:"screen_name"`
	// Photo is the URL of the user's avatar.
	Photo string `json:"photo"`
	// StatusAudio is the track currently broadcast to the user's status,
	// present only in broadcast-list replies.
	StatusAudio *Audio `json:"status_audio"`
}

// DisplayName returns whichever name form the reply carried:
// the combined name when present, otherwise first and last name joined.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Group is the subset of a community record the audio section returns.
type Group struct {
	// ID is the community identifier (positive; owner ids negate it).
	ID uint64 `json:"id"`
	// Name is the community name.
	Name string `json:"name"`
	// ScreenName is the short address of the community page.
	ScreenName string `json:"screen_name"`
	// Photo is the URL of the community avatar.
	Photo string `json:"photo"`
	// StatusAudio is the track currently broadcast to the community's status,
	// present only in broadcast-list replies.
	StatusAudio *Audio `json:"status_audio"`
}

// Genre is a music genre identifier of the audio section.
type Genre uint32

// Genres of the audio section.
const (
	GenreRock             Genre = 1
	GenrePop              Genre = 2
	GenreRapAndHipHop     Genre = 3
	GenreEasyListening    Genre = 4
	GenreDanceAndHouse    Genre = 5
	GenreInstrumental     Genre = 6
	GenreMetal            Genre = 7
	GenreAlternative      Genre = 8
	GenreDubstep          Genre = 9
	GenreJazzAndBlues     Genre = 10
	GenreDrumAndBass      Genre = 11
	GenreTrance           Genre = 12
	GenreChanson          Genre = 13
	GenreEthnic           Genre = 14
	GenreAcousticAndVocal Genre = 15
	GenreReggae           Genre = 16
	GenreClassical        Genre = 17
	GenreIndiePop         Genre = 18
	GenreSpeech           Genre = 19
	GenreElectropopDisco  Genre = 21
	GenreOther            Genre = 22
)

// SearchSort selects the ordering of search results.
type SearchSort uint8

// Search result orderings.
const (
	// SearchSortByDate orders results by the date they were added.
	SearchSortByDate SearchSort = 0
	// SearchSortByDuration orders results by track length.
	SearchSortByDuration SearchSort = 1
	// SearchSortByPopularity orders results by popularity.
	SearchSortByPopularity SearchSort = 2
)
