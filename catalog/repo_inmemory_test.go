package catalog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mochilabs/go-catalog-server/catalog"
)

func TestInMemoryCatalogRepo_CreateAlbum(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()

	t.Run("empty title", func(t *testing.T) {
		_, err := repo.CreateAlbum("")
		require.ErrorIs(t, err, catalog.TitleRequiredErr)
	})

	t.Run("whitespace title", func(t *testing.T) {
		_, err := repo.CreateAlbum("   ")
		require.ErrorIs(t, err, catalog.TitleRequiredErr)
	})

	t.Run("fresh album with unique id", func(t *testing.T) {
		first, err := repo.CreateAlbum("Birthday")
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)
		require.Equal(t, "Birthday", first.Title)
		require.NotNil(t, first.Photos)
		require.Empty(t, first.Photos)

		second, err := repo.CreateAlbum("Birthday")
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)
	})
}

func TestInMemoryCatalogRepo_Album(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()
	created, err := repo.CreateAlbum("Trip")
	require.NoError(t, err)

	found, err := repo.Album(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	_, err = repo.Album("nope")
	require.ErrorIs(t, err, catalog.AlbumNotFoundErr)
}

func TestInMemoryCatalogRepo_AddPhoto(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()
	album, err := repo.CreateAlbum("Trip")
	require.NoError(t, err)

	t.Run("unknown album", func(t *testing.T) {
		_, err := repo.AddPhoto("nope", "http://x/i.jpg", catalog.OrientationPortrait)
		require.ErrorIs(t, err, catalog.AlbumNotFoundErr)
	})

	t.Run("appends in order", func(t *testing.T) {
		first, err := repo.AddPhoto(album.ID, "http://x/1.jpg", catalog.OrientationPortrait)
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)
		require.Equal(t, album.ID, first.AlbumID)

		second, err := repo.AddPhoto(album.ID, "http://x/2.jpg", catalog.OrientationLandscape)
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		stored, err := repo.Album(album.ID)
		require.NoError(t, err)
		require.Len(t, stored.Photos, 2)
		require.Equal(t, "http://x/1.jpg", stored.Photos[0].URL)
		require.Equal(t, "http://x/2.jpg", stored.Photos[1].URL)
	})
}

func TestInMemoryCatalogRepo_DeleteAlbum_Cascades(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()
	album, err := repo.CreateAlbum("X")
	require.NoError(t, err)
	photo, err := repo.AddPhoto(album.ID, "http://x/i.jpg", catalog.OrientationPortrait)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAlbum(album.ID))

	// The photo went down with its album.
	require.ErrorIs(t, repo.DeletePhoto(photo.ID), catalog.PhotoNotFoundErr)
	require.ErrorIs(t, repo.DeleteAlbum(album.ID), catalog.AlbumNotFoundErr)
}

func TestInMemoryCatalogRepo_DeletePhoto(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()
	album, err := repo.CreateAlbum("Trip")
	require.NoError(t, err)

	first, err := repo.AddPhoto(album.ID, "http://x/1.jpg", catalog.OrientationPortrait)
	require.NoError(t, err)
	second, err := repo.AddPhoto(album.ID, "http://x/2.jpg", catalog.OrientationLandscape)
	require.NoError(t, err)

	require.NoError(t, repo.DeletePhoto(first.ID))

	stored, err := repo.Album(album.ID)
	require.NoError(t, err)
	require.Len(t, stored.Photos, 1)
	require.Equal(t, second.ID, stored.Photos[0].ID)

	require.ErrorIs(t, repo.DeletePhoto(first.ID), catalog.PhotoNotFoundErr)
}

func TestInMemoryCatalogRepo_RoundTrip(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()

	trip, err := repo.CreateAlbum("Trip")
	require.NoError(t, err)
	party, err := repo.CreateAlbum("Party")
	require.NoError(t, err)
	family, err := repo.CreateAlbum("Family")
	require.NoError(t, err)

	_, err = repo.AddPhoto(trip.ID, "http://x/1.jpg", catalog.OrientationLandscape)
	require.NoError(t, err)
	kept, err := repo.AddPhoto(party.ID, "http://x/2.jpg", catalog.OrientationPortrait)
	require.NoError(t, err)
	dropped, err := repo.AddPhoto(party.ID, "http://x/3.jpg", catalog.OrientationPortrait)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAlbum(trip.ID))
	require.NoError(t, repo.DeletePhoto(dropped.ID))

	// Exactly the survivors, in original insertion order, no ghosts.
	albums := repo.Albums()
	require.Len(t, albums, 2)
	require.Equal(t, party.ID, albums[0].ID)
	require.Equal(t, family.ID, albums[1].ID)
	require.Len(t, albums[0].Photos, 1)
	require.Equal(t, kept.ID, albums[0].Photos[0].ID)
	require.Empty(t, albums[1].Photos)
}

func TestInMemoryCatalogRepo_ConcurrentDeleteAlbum(t *testing.T) {
	const deleters = 8

	repo := catalog.NewInMemoryCatalogRepo()
	album, err := repo.CreateAlbum("Contested")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, deleters)
	for i := 0; i < deleters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.DeleteAlbum(album.ID)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, notFound int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, catalog.AlbumNotFoundErr)
			notFound++
		}
	}

	// Exactly one delete wins; the store stays consistent.
	require.Equal(t, 1, succeeded)
	require.Equal(t, deleters-1, notFound)
	require.Empty(t, repo.Albums())
}

func TestInMemoryCatalogRepo_ReturnsCopies(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo()
	album, err := repo.CreateAlbum("Trip")
	require.NoError(t, err)
	_, err = repo.AddPhoto(album.ID, "http://x/1.jpg", catalog.OrientationPortrait)
	require.NoError(t, err)

	albums := repo.Albums()
	albums[0].Title = "mutated"
	albums[0].Photos[0].URL = "mutated"

	stored, err := repo.Album(album.ID)
	require.NoError(t, err)
	require.Equal(t, "Trip", stored.Title)
	require.Equal(t, "http://x/1.jpg", stored.Photos[0].URL)
}

func TestInMemoryCatalogRepo_SeedAlbums(t *testing.T) {
	repo := catalog.NewInMemoryCatalogRepo(catalog.WithSeedAlbums(catalog.StarterAlbums()...))

	albums := repo.Albums()
	require.Len(t, albums, 1)
	require.Equal(t, "a1", albums[0].ID)
	require.Len(t, albums[0].Photos, 2)
	require.Equal(t, catalog.OrientationLandscape, albums[0].Photos[0].Orientation)
	require.Equal(t, catalog.OrientationPortrait, albums[0].Photos[1].Orientation)
}
