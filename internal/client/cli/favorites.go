package cli

import (
	"context"
	"fmt"
)

func (a *App) list(ctx context.Context, userID string) error {
	favs, err := a.backend.ListFavorites(ctx, userID)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites")
		return nil
	}
	return a.print(favs)
}

func (a *App) add(ctx context.Context, userID string, musicID int64) error {
	favs, err := a.backend.AddFavorite(ctx, userID, musicID)
	if err != nil {
		return err
	}
	return a.print(favs)
}

func (a *App) remove(ctx context.Context, userID string, musicID int64) error {
	favs, err := a.backend.RemoveFavorite(ctx, userID, musicID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %d favorite(s)\n", len(favs))
	return nil
}
