// This file implements the tags table accessor: the lookup-or-create
// deduplicator plus the optional parent chain for nested tags.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// ResolveTag returns the ID of the tag with the given name, inserting a
// new row if none exists. The tag's child chain is resolved too: each
// child is created independently if absent, and a newly created child
// records the tag above it as parent. An existing tag keeps whatever
// parent it already has (first-write-wins). The returned ID is always the
// top tag's.
func (s *Store) ResolveTag(tag types.Tag) (string, error) {
	if err := tag.Validate(); err != nil {
		return "", err
	}
	return s.resolveTag(s.db, tag)
}

// resolveTag is the transaction-aware form of ResolveTag.
func (s *Store) resolveTag(q execQuerier, tag types.Tag) (string, error) {
	topID := ""
	parentID := ""
	for node := &tag; node != nil; node = node.Child {
		id, err := s.resolveTagNode(q, node.Name, parentID)
		if err != nil {
			return "", err
		}
		if topID == "" {
			topID = id
		}
		parentID = id
	}
	return topID, nil
}

// resolveTagNode looks up one tag by exact name, inserting it with the
// given parent if absent.
func (s *Store) resolveTagNode(q execQuerier, name, parentID string) (string, error) {
	var id string
	err := q.QueryRow("SELECT tag_id FROM tags WHERE name = ?", name).Scan(&id)
	if err == nil {
		s.log.Debug("tag reused", zap.String("name", name), zap.String("tag_id", id))
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("looking up tag %q: %w", name, err)
	}

	id = generateUUID()
	_, err = q.Exec(
		"INSERT INTO tags (tag_id, name, parent_id) VALUES (?, ?, ?)",
		id, name, nullString(parentID),
	)
	if err != nil {
		return "", fmt.Errorf("inserting tag %q: %w", name, err)
	}
	s.log.Info("tag created", zap.String("name", name), zap.String("tag_id", id))
	return id, nil
}

// childOf returns the first recorded child of the given tag, or ok=false
// when the tag has none. A tag records at most one meaningful child in the
// graph model; when several rows name the same parent the earliest wins.
func (s *Store) childOf(tagID string) (childID, name string, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT tag_id, name FROM tags WHERE parent_id = ? ORDER BY rowid LIMIT 1", tagID,
	).Scan(&childID, &name)
	if err == sql.ErrNoRows {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, fmt.Errorf("looking up child of tag %s: %w", tagID, err)
	}
	return childID, name, true, nil
}

// hydrateTag rebuilds a tag and its stored child chain starting from the
// given row. The visited set guards against a cycle in parent links.
func (s *Store) hydrateTag(tagID, name string) (types.Tag, error) {
	tag := types.Tag{Name: name}
	visited := map[string]bool{tagID: true}

	current := &tag
	currentID := tagID
	for {
		childID, childName, ok, err := s.childOf(currentID)
		if err != nil {
			return types.Tag{}, err
		}
		if !ok || visited[childID] {
			return tag, nil
		}
		visited[childID] = true
		current.Child = &types.Tag{Name: childName}
		current = current.Child
		currentID = childID
	}
}
