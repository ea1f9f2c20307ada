package vk

//go:generate $MOCKGEN -source=audio.go -destination=mocks/audio_client_mock.go

import (
	"context"
	"fmt"
)

// AudioClient defines the typed operations of the audio section.
// Every method builds the outgoing parameter set, invokes the remote method
// through the Caller, and projects the reply into domain records; nothing is
// cached or retried at this layer.
type AudioClient interface {
	// Add copies an audio onto the current user's or a community's list and returns the new audio id.
	Add(ctx context.Context, audioID uint64, ownerID int64, opts *AudioAddOptions) (uint64, error)
	// AddAlbum creates an album and returns its id.
	AddAlbum(ctx context.Context, title string, opts *AudioAlbumOptions) (uint64, error)
	// Delete removes an audio from the owner's list.
	Delete(ctx context.Context, audioID uint64, ownerID int64) (bool, error)
	// DeleteAlbum removes an album.
	DeleteAlbum(ctx context.Context, albumID uint64, opts *AudioAlbumOptions) (bool, error)
	// Edit updates an audio's fields and returns the id of the lyrics saved from the text,
	// zero when the remote reports none.
	Edit(ctx context.Context, audioID uint64, ownerID int64, changes *AudioEditParams) (int64, error)
	// EditAlbum renames an album.
	EditAlbum(ctx context.Context, albumID uint64, title string, opts *AudioAlbumOptions) (bool, error)
	// Get lists the audios of a user or community, optionally with the owner record prepended.
	Get(ctx context.Context, ownerID int64, opts *AudioGetOptions) (*AudioGetResult, error)
	// GetAlbums lists the albums of a user or community.
	GetAlbums(ctx context.Context, ownerID int64, opts *AudioAlbumsOptions) ([]*AudioAlbum, error)
	// GetBroadcastListFriends lists friends whose status broadcasts a track.
	GetBroadcastListFriends(ctx context.Context, active bool) ([]*User, error)
	// GetBroadcastListGroup lists communities whose status broadcasts a track.
	GetBroadcastListGroup(ctx context.Context, active bool) ([]*Group, error)
	// GetByID fetches audios by their composite "{owner_id}_{audio_id}" ids, preserving request order.
	GetByID(ctx context.Context, ids []string) ([]*Audio, error)
	// GetCount returns the total number of audios on the owner's list.
	GetCount(ctx context.Context, ownerID int64) (int64, error)
	// GetFromGroup lists the audios of a community, addressed by its positive id.
	GetFromGroup(ctx context.Context, groupID uint64, opts *AudioGetOptions) (*AudioGetResult, error)
	// GetLyrics fetches the lyrics text by its id.
	GetLyrics(ctx context.Context, lyricsID uint64) (*Lyrics, error)
	// GetPopular lists tracks popular across the service.
	GetPopular(ctx context.Context, opts *AudioPopularOptions) ([]*Audio, error)
	// GetRecommendations lists tracks suggested for a user or seeded by a target audio.
	GetRecommendations(ctx context.Context, opts *AudioRecommendationsOptions) ([]*Audio, error)
	// GetUploadServer returns the URL audio files are uploaded to before Save.
	GetUploadServer(ctx context.Context) (string, error)
	// MoveToAlbum files audios under an album.
	MoveToAlbum(ctx context.Context, albumID uint64, audioIDs []uint64, opts *AudioAlbumOptions) (bool, error)
	// Reorder moves an audio between two neighbors on the owner's list.
	Reorder(ctx context.Context, audioID uint64, ownerID int64, opts *AudioReorderOptions) (bool, error)
	// Restore undoes a recent Delete and returns the restored record.
	Restore(ctx context.Context, audioID uint64, ownerID int64) (*Audio, error)
	// Save registers an uploaded audio file using the tokens returned by the upload server.
	Save(ctx context.Context, upload *AudioSaveParams) ([]*Audio, error)
	// Search finds audios matching a query and reports the total match count.
	Search(ctx context.Context, query string, opts *AudioSearchOptions) (*AudioSearchResult, error)
	// SetBroadcast puts an audio into the statuses of the targets and returns the affected ids.
	SetBroadcast(ctx context.Context, audio string, targetIDs []int64) ([]int64, error)
}

// AudioClientImpl implements the AudioClient interface over an injected Caller.
type AudioClientImpl struct {
	// caller executes the remote methods.
	caller Caller
}

// Remote method names of the audio section.
const (
	methodAudioAdd                = "audio.add"
	methodAudioAddAlbum           = "audio.addAlbum"
	methodAudioDelete             = "audio.delete"
	methodAudioDeleteAlbum        = "audio.deleteAlbum"
	methodAudioEdit               = "audio.edit"
	methodAudioEditAlbum          = "audio.editAlbum"
	methodAudioGet                = "audio.get"
	methodAudioGetAlbums          = "audio.getAlbums"
	methodAudioGetBroadcastList   = "audio.getBroadcastList"
	methodAudioGetByID            = "audio.getById"
	methodAudioGetCount           = "audio.getCount"
	methodAudioGetLyrics          = "audio.getLyrics"
	methodAudioGetPopular         = "audio.getPopular"
	methodAudioGetRecommendations = "audio.getRecommendations"
	methodAudioGetUploadServer    = "audio.getUploadServer"
	methodAudioMoveToAlbum        = "audio.moveToAlbum"
	methodAudioReorder            = "audio.reorder"
	methodAudioRestore            = "audio.restore"
	methodAudioSave               = "audio.save"
	methodAudioSearch             = "audio.search"
	methodAudioSetBroadcast       = "audio.setBroadcast"
)

const (
	// apiVersionResponseArray is the protocol revision pinned by operations whose
	// reply is a positional response array, so the transport cannot negotiate the
	// keyed format these projections do not understand.
	apiVersionResponseArray = "5.0"

	// maxGetCount is the ceiling above which Get and GetFromGroup omit the count
	// parameter instead of clamping it, leaving the remote default in effect.
	maxGetCount = 6000

	// maxPopularCount is the same ceiling for GetPopular.
	maxPopularCount = 1000
)

// Fixed values of the broadcast-list filter parameter.
const (
	broadcastFilterFriends = "friends"
	broadcastFilterGroups  = "groups"
)

// AudioGetOptions narrows a Get or GetFromGroup listing.
type AudioGetOptions struct {
	// AlbumID restricts the listing to one album. Zero means no restriction.
	AlbumID uint64
	// AudioIDs restricts the listing to specific audio ids. Empty means no restriction.
	AudioIDs []uint64
	// NeedUser requests the owner record prepended to the reply.
	NeedUser bool
	// Count limits the number of returned audios. Values above 6000 are omitted
	// from the request entirely, falling back to the remote default.
	Count uint32
	// Offset skips that many audios from the start of the list.
	Offset uint32
}

// AudioGetResult is the projection of a Get or GetFromGroup reply.
type AudioGetResult struct {
	// Audios is the listed audio sequence in remote order.
	Audios []*Audio
	// User is the owner record, set only when NeedUser was requested
	// and the reply was non-empty.
	User *User
}

// AudioSearchOptions narrows a Search.
type AudioSearchOptions struct {
	// AutoComplete enables typo correction of the query.
	AutoComplete bool
	// Lyrics searches in lyrics instead of artist and title only.
	Lyrics bool
	// Sort selects the result ordering. Nil leaves the remote default.
	Sort *SearchSort
	// Count limits the number of returned audios; the remote accepts up to 200.
	Count uint32
	// Offset skips that many results.
	Offset uint32
}

// AudioSearchResult is the projection of a Search reply.
type AudioSearchResult struct {
	// TotalCount is the total number of matches reported by the remote,
	// independent of Count and Offset.
	TotalCount int64
	// Audios is the returned page of matches in remote order.
	Audios []*Audio
}

// AudioAddOptions targets Add at a community list instead of the user's own.
type AudioAddOptions struct {
	// GroupID is the community whose list receives the audio. Zero targets the user.
	GroupID uint64
}

// AudioAlbumOptions targets an album operation at a community instead of the user.
type AudioAlbumOptions struct {
	// GroupID is the community owning the album. Zero targets the user.
	GroupID uint64
}

// AudioAlbumsOptions pages a GetAlbums listing.
type AudioAlbumsOptions struct {
	// Count limits the number of returned albums.
	Count uint32
	// Offset skips that many albums from the start of the list.
	Offset uint32
}

// AudioEditParams carries the fields Edit writes. Artist, Title, and Text must
// all be set to non-empty strings; Edit rejects the request locally otherwise.
type AudioEditParams struct {
	// Artist is the new performer name. Required, non-empty.
	Artist *string
	// Title is the new track title. Required, non-empty.
	Title *string
	// Text is the new lyrics body; its id is returned. Required, non-empty.
	Text *string
	// GenreID reassigns the genre. Zero leaves it unchanged.
	GenreID Genre
	// NoSearch hides the audio from search results.
	NoSearch bool
}

// AudioPopularOptions narrows a GetPopular listing.
type AudioPopularOptions struct {
	// OnlyEng restricts the listing to foreign tracks only.
	OnlyEng bool
	// GenreID restricts the listing to one genre. Zero means all genres.
	GenreID Genre
	// Count limits the number of returned audios. Values above 1000 are omitted
	// from the request entirely, falling back to the remote default.
	Count uint32
	// Offset skips that many audios.
	Offset uint32
}

// AudioRecommendationsOptions narrows a GetRecommendations listing.
type AudioRecommendationsOptions struct {
	// UserID requests recommendations for another user. Zero means the current user.
	UserID uint64
	// TargetAudio seeds recommendations with a composite "{owner_id}_{audio_id}" id.
	TargetAudio string
	// Count limits the number of returned audios.
	Count uint32
	// Offset skips that many audios.
	Offset uint32
	// Shuffle randomizes the result order. Nil defaults to true.
	Shuffle *bool
}

// AudioReorderOptions positions the moved audio between two neighbors.
type AudioReorderOptions struct {
	// Before is the id of the audio the moved one should precede. Zero omits it.
	Before uint64
	// After is the id of the audio the moved one should follow. Zero omits it.
	After uint64
}

// AudioSaveParams carries the tokens produced by posting a file
// to the upload server URL returned by GetUploadServer.
type AudioSaveParams struct {
	// Server is the upload server id from the upload reply.
	Server int64
	// Audio is the uploaded file token from the upload reply. Required.
	Audio string
	// Hash is the integrity token from the upload reply.
	Hash string
	// Artist overrides the performer name parsed from the file.
	Artist string
	// Title overrides the track title parsed from the file.
	Title string
}

// NewAudioClient creates and returns a new instance of AudioClientImpl
// bound to the given Caller.
func NewAudioClient(caller Caller) AudioClient {
	return &AudioClientImpl{caller: caller}
}

// Add copies an audio onto the current user's or a community's list and returns the new audio id.
func (c *AudioClientImpl) Add(ctx context.Context, audioID uint64, ownerID int64, opts *AudioAddOptions) (uint64, error) {
	params := NewRequestParams()
	params.SetUint("audio_id", audioID)
	params.SetInt("owner_id", ownerID)

	if opts != nil && opts.GroupID > 0 {
		params.SetUint("group_id", opts.GroupID)
	}

	response, err := c.caller.Call(ctx, methodAudioAdd, params)
	if err != nil {
		return 0, err
	}

	return response.Uint()
}

// AddAlbum creates an album and returns its id.
func (c *AudioClientImpl) AddAlbum(ctx context.Context, title string, opts *AudioAlbumOptions) (uint64, error) {
	if title == "" {
		return 0, fmt.Errorf("%w: title must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetString("title", title)
	applyAlbumOptions(params, opts)

	response, err := c.caller.Call(ctx, methodAudioAddAlbum, params)
	if err != nil {
		return 0, err
	}

	// The reply wraps the id into a one-field object.
	var created struct {
		AlbumID uint64 `json:"album_id"`
	}

	if err = response.Decode(&created); err != nil {
		return 0, fmt.Errorf("failed to decode created album: %w", err)
	}

	return created.AlbumID, nil
}

// Delete removes an audio from the owner's list.
func (c *AudioClientImpl) Delete(ctx context.Context, audioID uint64, ownerID int64) (bool, error) {
	params := NewRequestParams()
	params.SetUint("audio_id", audioID)
	params.SetInt("owner_id", ownerID)

	response, err := c.caller.Call(ctx, methodAudioDelete, params)
	if err != nil {
		return false, err
	}

	return response.Bool()
}

// DeleteAlbum removes an album.
func (c *AudioClientImpl) DeleteAlbum(ctx context.Context, albumID uint64, opts *AudioAlbumOptions) (bool, error) {
	params := NewRequestParams()
	params.SetUint("album_id", albumID)
	applyAlbumOptions(params, opts)

	response, err := c.caller.Call(ctx, methodAudioDeleteAlbum, params)
	if err != nil {
		return false, err
	}

	return response.Bool()
}

// Edit updates an audio's fields and returns the id of the lyrics saved from the text.
func (c *AudioClientImpl) Edit(
	ctx context.Context,
	audioID uint64,
	ownerID int64,
	changes *AudioEditParams,
) (int64, error) {
	switch {
	case changes == nil:
		return 0, fmt.Errorf("%w: artist, title and text must be set", ErrInvalidParameter)
	case changes.Artist == nil || *changes.Artist == "":
		return 0, fmt.Errorf("%w: artist must not be empty", ErrInvalidParameter)
	case changes.Title == nil || *changes.Title == "":
		return 0, fmt.Errorf("%w: title must not be empty", ErrInvalidParameter)
	case changes.Text == nil || *changes.Text == "":
		return 0, fmt.Errorf("%w: text must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetUint("audio_id", audioID)
	params.SetInt("owner_id", ownerID)
	params.SetString("artist", *changes.Artist)
	params.SetString("title", *changes.Title)
	params.SetString("text", *changes.Text)

	if changes.GenreID > 0 {
		params.SetUint("genre_id", uint64(changes.GenreID))
	}

	if changes.NoSearch {
		params.SetBool("no_search", true)
	}

	response, err := c.caller.Call(ctx, methodAudioEdit, params)
	if err != nil {
		return 0, err
	}

	return response.Int()
}

// EditAlbum renames an album.
func (c *AudioClientImpl) EditAlbum(
	ctx context.Context,
	albumID uint64,
	title string,
	opts *AudioAlbumOptions,
) (bool, error) {
	if title == "" {
		return false, fmt.Errorf("%w: title must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetUint("album_id", albumID)
	params.SetString("title", title)
	applyAlbumOptions(params, opts)

	response, err := c.caller.Call(ctx, methodAudioEditAlbum, params)
	if err != nil {
		return false, err
	}

	return response.Bool()
}

// Get lists the audios of a user or community, optionally with the owner record prepended.
func (c *AudioClientImpl) Get(ctx context.Context, ownerID int64, opts *AudioGetOptions) (*AudioGetResult, error) {
	params := NewRequestParams()
	params.SetString("v", apiVersionResponseArray)
	params.SetInt("owner_id", ownerID)

	needUser := false
	if opts != nil {
		needUser = opts.NeedUser

		if opts.AlbumID > 0 {
			params.SetUint("album_id", opts.AlbumID)
		}

		params.SetUints("aids", opts.AudioIDs)

		if opts.NeedUser {
			params.SetBool("need_user", true)
		}

		if opts.Count > 0 && opts.Count <= maxGetCount {
			params.SetUint("count", uint64(opts.Count))
		}

		if opts.Offset > 0 {
			params.SetUint("offset", uint64(opts.Offset))
		}
	}

	response, err := c.caller.Call(ctx, methodAudioGet, params)
	if err != nil {
		return nil, err
	}

	lead := 0
	if needUser {
		lead = 1
	}

	meta, audios, err := decodeResponseItems[Audio](response, lead)
	if err != nil {
		return nil, err
	}

	result := &AudioGetResult{Audios: audios}

	if len(meta) > 0 {
		var owner User
		if err = meta[0].Decode(&owner); err != nil {
			return nil, fmt.Errorf("failed to decode owner record: %w", err)
		}

		result.User = &owner
	}

	return result, nil
}

// GetAlbums lists the albums of a user or community.
func (c *AudioClientImpl) GetAlbums(
	ctx context.Context,
	ownerID int64,
	opts *AudioAlbumsOptions,
) ([]*AudioAlbum, error) {
	params := NewRequestParams()
	params.SetString("v", apiVersionResponseArray)
	params.SetInt("owner_id", ownerID)

	if opts != nil {
		if opts.Count > 0 {
			params.SetUint("count", uint64(opts.Count))
		}

		if opts.Offset > 0 {
			params.SetUint("offset", uint64(opts.Offset))
		}
	}

	response, err := c.caller.Call(ctx, methodAudioGetAlbums, params)
	if err != nil {
		return nil, err
	}

	// The leading element carries the total count; only the records matter here.
	_, albums, err := decodeResponseItems[AudioAlbum](response, 1)
	if err != nil {
		return nil, err
	}

	return albums, nil
}

// GetBroadcastListFriends lists friends whose status broadcasts a track.
func (c *AudioClientImpl) GetBroadcastListFriends(ctx context.Context, active bool) ([]*User, error) {
	response, err := c.caller.Call(ctx, methodAudioGetBroadcastList, broadcastListParams(broadcastFilterFriends, active))
	if err != nil {
		return nil, err
	}

	_, friends, err := decodeResponseItems[User](response, 0)
	if err != nil {
		return nil, err
	}

	return friends, nil
}

// GetBroadcastListGroup lists communities whose status broadcasts a track.
func (c *AudioClientImpl) GetBroadcastListGroup(ctx context.Context, active bool) ([]*Group, error) {
	response, err := c.caller.Call(ctx, methodAudioGetBroadcastList, broadcastListParams(broadcastFilterGroups, active))
	if err != nil {
		return nil, err
	}

	_, groups, err := decodeResponseItems[Group](response, 0)
	if err != nil {
		return nil, err
	}

	return groups, nil
}

// GetByID fetches audios by their composite "{owner_id}_{audio_id}" ids, preserving request order.
func (c *AudioClientImpl) GetByID(ctx context.Context, ids []string) ([]*Audio, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: audios must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetStrings("audios", ids)

	response, err := c.caller.Call(ctx, methodAudioGetByID, params)
	if err != nil {
		return nil, err
	}

	_, audios, err := decodeResponseItems[Audio](response, 0)
	if err != nil {
		return nil, err
	}

	return audios, nil
}

// GetCount returns the total number of audios on the owner's list.
func (c *AudioClientImpl) GetCount(ctx context.Context, ownerID int64) (int64, error) {
	params := NewRequestParams()
	params.SetInt("owner_id", ownerID)

	response, err := c.caller.Call(ctx, methodAudioGetCount, params)
	if err != nil {
		return 0, err
	}

	return response.Int()
}

// GetFromGroup lists the audios of a community, addressed by its positive id.
// The community is encoded as a negative owner id on the wire.
func (c *AudioClientImpl) GetFromGroup(
	ctx context.Context,
	groupID uint64,
	opts *AudioGetOptions,
) (*AudioGetResult, error) {
	return c.Get(ctx, -int64(groupID), opts) //nolint:gosec // Community ids are far below the int64 range.
}

// GetLyrics fetches the lyrics text by its id.
func (c *AudioClientImpl) GetLyrics(ctx context.Context, lyricsID uint64) (*Lyrics, error) {
	params := NewRequestParams()
	params.SetUint("lyrics_id", lyricsID)

	response, err := c.caller.Call(ctx, methodAudioGetLyrics, params)
	if err != nil {
		return nil, err
	}

	var lyrics Lyrics
	if err = response.Decode(&lyrics); err != nil {
		return nil, fmt.Errorf("failed to decode lyrics: %w", err)
	}

	return &lyrics, nil
}

// GetPopular lists tracks popular across the service.
func (c *AudioClientImpl) GetPopular(ctx context.Context, opts *AudioPopularOptions) ([]*Audio, error) {
	params := NewRequestParams()

	if opts != nil {
		if opts.OnlyEng {
			params.SetBool("only_eng", true)
		}

		if opts.GenreID > 0 {
			params.SetUint("genre_id", uint64(opts.GenreID))
		}

		if opts.Count > 0 && opts.Count <= maxPopularCount {
			params.SetUint("count", uint64(opts.Count))
		}

		if opts.Offset > 0 {
			params.SetUint("offset", uint64(opts.Offset))
		}
	}

	response, err := c.caller.Call(ctx, methodAudioGetPopular, params)
	if err != nil {
		return nil, err
	}

	_, audios, err := decodeResponseItems[Audio](response, 0)
	if err != nil {
		return nil, err
	}

	return audios, nil
}

// GetRecommendations lists tracks suggested for a user or seeded by a target audio.
func (c *AudioClientImpl) GetRecommendations(
	ctx context.Context,
	opts *AudioRecommendationsOptions,
) ([]*Audio, error) {
	params := NewRequestParams()

	// Shuffle is the one optional the remote defaults differently from the
	// binding, so its resolved value is always sent.
	shuffle := true

	if opts != nil {
		if opts.UserID > 0 {
			params.SetUint("user_id", opts.UserID)
		}

		if opts.TargetAudio != "" {
			params.SetString("target_audio", opts.TargetAudio)
		}

		if opts.Count > 0 {
			params.SetUint("count", uint64(opts.Count))
		}

		if opts.Offset > 0 {
			params.SetUint("offset", uint64(opts.Offset))
		}

		if opts.Shuffle != nil {
			shuffle = *opts.Shuffle
		}
	}

	params.SetBool("shuffle", shuffle)

	response, err := c.caller.Call(ctx, methodAudioGetRecommendations, params)
	if err != nil {
		return nil, err
	}

	_, audios, err := decodeResponseItems[Audio](response, 0)
	if err != nil {
		return nil, err
	}

	return audios, nil
}

// GetUploadServer returns the URL audio files are uploaded to before Save.
func (c *AudioClientImpl) GetUploadServer(ctx context.Context) (string, error) {
	response, err := c.caller.Call(ctx, methodAudioGetUploadServer, NewRequestParams())
	if err != nil {
		return "", err
	}

	var server struct {
		UploadURL string `json:"upload_url"`
	}

	if err = response.Decode(&server); err != nil {
		return "", fmt.Errorf("failed to decode upload server: %w", err)
	}

	return server.UploadURL, nil
}

// MoveToAlbum files audios under an album.
func (c *AudioClientImpl) MoveToAlbum(
	ctx context.Context,
	albumID uint64,
	audioIDs []uint64,
	opts *AudioAlbumOptions,
) (bool, error) {
	if len(audioIDs) == 0 {
		return false, fmt.Errorf("%w: aids must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetUint("album_id", albumID)
	params.SetUints("aids", audioIDs)
	applyAlbumOptions(params, opts)

	response, err := c.caller.Call(ctx, methodAudioMoveToAlbum, params)
	if err != nil {
		return false, err
	}

	return response.Bool()
}

// Reorder moves an audio between two neighbors on the owner's list.
func (c *AudioClientImpl) Reorder(
	ctx context.Context,
	audioID uint64,
	ownerID int64,
	opts *AudioReorderOptions,
) (bool, error) {
	params := NewRequestParams()
	params.SetUint("audio_id", audioID)
	params.SetInt("owner_id", ownerID)

	if opts != nil {
		if opts.Before > 0 {
			params.SetUint("before", opts.Before)
		}

		if opts.After > 0 {
			params.SetUint("after", opts.After)
		}
	}

	response, err := c.caller.Call(ctx, methodAudioReorder, params)
	if err != nil {
		return false, err
	}

	return response.Bool()
}

// Restore undoes a recent Delete and returns the restored record.
func (c *AudioClientImpl) Restore(ctx context.Context, audioID uint64, ownerID int64) (*Audio, error) {
	params := NewRequestParams()
	params.SetUint("audio_id", audioID)
	params.SetInt("owner_id", ownerID)

	response, err := c.caller.Call(ctx, methodAudioRestore, params)
	if err != nil {
		return nil, err
	}

	var audio Audio
	if err = response.Decode(&audio); err != nil {
		return nil, fmt.Errorf("failed to decode restored audio: %w", err)
	}

	return &audio, nil
}

// Save registers an uploaded audio file using the tokens returned by the upload server.
func (c *AudioClientImpl) Save(ctx context.Context, upload *AudioSaveParams) ([]*Audio, error) {
	if upload == nil || upload.Audio == "" {
		return nil, fmt.Errorf("%w: audio must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetInt("server", upload.Server)
	params.SetString("audio", upload.Audio)

	if upload.Hash != "" {
		params.SetString("hash", upload.Hash)
	}

	if upload.Artist != "" {
		params.SetString("artist", upload.Artist)
	}

	if upload.Title != "" {
		params.SetString("title", upload.Title)
	}

	response, err := c.caller.Call(ctx, methodAudioSave, params)
	if err != nil {
		return nil, err
	}

	_, audios, err := decodeResponseItems[Audio](response, 0)
	if err != nil {
		return nil, err
	}

	return audios, nil
}

// Search finds audios matching a query and reports the total match count.
func (c *AudioClientImpl) Search(
	ctx context.Context,
	query string,
	opts *AudioSearchOptions,
) (*AudioSearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: q must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetString("v", apiVersionResponseArray)
	params.SetString("q", query)

	if opts != nil {
		if opts.AutoComplete {
			params.SetBool("auto_complete", true)
		}

		if opts.Lyrics {
			params.SetBool("lyrics", true)
		}

		if opts.Sort != nil {
			params.SetUint("sort", uint64(*opts.Sort))
		}

		if opts.Count > 0 {
			params.SetUint("count", uint64(opts.Count))
		}

		if opts.Offset > 0 {
			params.SetUint("offset", uint64(opts.Offset))
		}
	}

	response, err := c.caller.Call(ctx, methodAudioSearch, params)
	if err != nil {
		return nil, err
	}

	meta, audios, err := decodeResponseItems[Audio](response, 1)
	if err != nil {
		return nil, err
	}

	result := &AudioSearchResult{Audios: audios}

	if len(meta) > 0 {
		totalCount, err := meta[0].Int()
		if err != nil {
			return nil, fmt.Errorf("failed to decode total match count: %w", err)
		}

		result.TotalCount = totalCount
	}

	return result, nil
}

// SetBroadcast puts an audio into the statuses of the targets and returns the affected ids.
func (c *AudioClientImpl) SetBroadcast(ctx context.Context, audio string, targetIDs []int64) ([]int64, error) {
	if audio == "" {
		return nil, fmt.Errorf("%w: audio must not be empty", ErrInvalidParameter)
	}

	params := NewRequestParams()
	params.SetString("audio", audio)
	params.SetInts("target_ids", targetIDs)

	response, err := c.caller.Call(ctx, methodAudioSetBroadcast, params)
	if err != nil {
		return nil, err
	}

	var affected []int64
	if err = response.Decode(&affected); err != nil {
		return nil, fmt.Errorf("failed to decode affected ids: %w", err)
	}

	return affected, nil
}

// broadcastListParams assembles the fixed parameter set of a broadcast-list query.
func broadcastListParams(filter string, active bool) *RequestParams {
	params := NewRequestParams()
	params.SetString("v", apiVersionResponseArray)
	params.SetString("filter", filter)

	if active {
		params.SetBool("active", true)
	}

	return params
}

// applyAlbumOptions adds the community target of an album operation when one is set.
func applyAlbumOptions(params *RequestParams, opts *AudioAlbumOptions) {
	if opts != nil && opts.GroupID > 0 {
		params.SetUint("group_id", opts.GroupID)
	}
}
