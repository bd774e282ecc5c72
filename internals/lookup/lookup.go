// Package lookup resolves foreign keys to display names without a
// server-side join: batch-fetch the referenced rows for one page, map in
// memory. List sizes here are tens to low hundreds of rows; no indexing.
package lookup

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "deeco_backend/internals/features/classes/live_classes/model"
	profileModel "deeco_backend/internals/features/users/profiles/model"
)

// MissingName is shown when a referenced row no longer exists.
const MissingName = "—"

// UserNames batch-loads display names for the given profile ids.
func UserNames(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	ids = dedup(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	var rows []profileModel.ProfileModel
	if err := db.
		Select("id, first_name, last_name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(rows))
	for i := range rows {
		out[rows[i].ID] = rows[i].DisplayName()
	}
	return out, nil
}

// ClassTitles batch-loads titles for the given live class ids.
func ClassTitles(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	ids = dedup(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	var rows []classModel.LiveClassModel
	if err := db.
		Select("id, title").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(rows))
	for i := range rows {
		out[rows[i].ID] = rows[i].Title
	}
	return out, nil
}

// Resolve reads a resolved name for an optional foreign key.
func Resolve(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil || *id == uuid.Nil {
		return MissingName
	}
	return ResolveID(names, *id)
}

// ResolveID reads a resolved name for a required foreign key.
func ResolveID(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return MissingName
}

// EligibleProfiles keeps only the profiles holding at least one enrollment.
// Input order of enrollment ids does not matter and duplicates are fine;
// the profiles' own (alphabetical) order is preserved.
func EligibleProfiles(profiles []profileModel.ProfileModel, enrolledUserIDs []uuid.UUID) []profileModel.ProfileModel {
	enrolled := make(map[uuid.UUID]struct{}, len(enrolledUserIDs))
	for _, id := range enrolledUserIDs {
		if id != uuid.Nil {
			enrolled[id] = struct{}{}
		}
	}
	out := make([]profileModel.ProfileModel, 0, len(enrolled))
	for i := range profiles {
		if _, ok := enrolled[profiles[i].ID]; ok {
			out = append(out, profiles[i])
		}
	}
	return out
}

func dedup(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
