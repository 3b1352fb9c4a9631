package service

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pageza/recipebook/backend/internal/model"
)

// Compile-time interface check.
var _ IRecipeStore = (*RecipeStore)(nil)

// RecipeStore owns the recipe collection together with the transient form
// state (draft, selection, errors, search text). All mutations go through it.
type RecipeStore struct {
	mu          sync.RWMutex
	recipes     []*model.Recipe
	placeholder string
	newID       func() uuid.UUID
	log         *log.Logger

	draft     *model.DraftRecipe
	editingID uuid.UUID
	selected  uuid.UUID
	errs      ValidationErrors
	search    string
}

// NewRecipeStore creates a store holding the given seed recipes in order.
// An empty placeholder falls back to model.DefaultImage.
func NewRecipeStore(logger *log.Logger, placeholder string, seed []model.DraftRecipe) *RecipeStore {
	if placeholder == "" {
		placeholder = model.DefaultImage
	}
	s := &RecipeStore{
		recipes:     make([]*model.Recipe, 0, len(seed)),
		placeholder: placeholder,
		newID:       uuid.New,
		log:         logger.WithPrefix("store"),
	}
	for _, d := range seed {
		if _, err := s.add(d); err != nil {
			s.log.Warn("skipping invalid seed recipe", "name", d.Name, "err", err)
		}
	}
	s.log.Debug("store initialized", "recipes", len(s.recipes))
	return s
}

// List returns every recipe in insertion order
func (s *RecipeStore) List() []*model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter("")
}

// Search returns the recipes matching query, in insertion order
func (s *RecipeStore) Search(query string) []*model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(query)
}

// Get returns a single recipe by id
func (s *RecipeStore) Get(id uuid.UUID) (*model.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return s.recipes[i].Clone(), nil
}

// Add validates the draft and appends it as a new recipe. On failure the
// returned error is a ValidationErrors and the collection is untouched.
// Form state is not touched; only Commit records errors.
func (s *RecipeStore) Add(d model.DraftRecipe) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(d)
}

// Update replaces the recipe with the given id by the normalized draft,
// keeping the id.
func (s *RecipeStore) Update(id uuid.UUID, d model.DraftRecipe) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, d)
}

// Remove deletes the recipe if present. Removing an unknown id is a no-op.
// A selection or edit draft pointing at the recipe is dropped.
func (s *RecipeStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("remove of unknown recipe ignored", "id", id)
		return
	}
	name := s.recipes[i].Name
	s.recipes = slices.Delete(s.recipes, i, i+1)

	if s.selected == id {
		s.selected = uuid.Nil
	}
	if s.draft != nil && s.editingID == id {
		s.clearDraft()
	}
	s.log.Info("recipe removed", "id", id, "name", name)
}

// Select opens the recipe for viewing. uuid.Nil closes the detail view and
// is always allowed.
func (s *RecipeStore) Select(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == uuid.Nil {
		s.selected = uuid.Nil
		return nil
	}
	if s.draft != nil {
		return ErrDraftActive
	}
	if s.indexOf(id) < 0 {
		return ErrNotFound
	}
	s.selected = id
	return nil
}

// BeginAdd opens an empty draft. Only allowed while browsing.
func (s *RecipeStore) BeginAdd() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m := s.mode(); m != ModeBrowsing {
		return fmt.Errorf("%w: cannot add while %s", ErrInvalidTransition, m)
	}
	d := model.NewDraft()
	s.draft = &d
	s.editingID = uuid.Nil
	s.errs = nil
	return nil
}

// BeginEdit opens a draft seeded from the recipe with the given id and
// closes the detail view.
func (s *RecipeStore) BeginEdit(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m := s.mode(); m != ModeBrowsing && m != ModeViewing {
		return fmt.Errorf("%w: cannot edit while %s", ErrInvalidTransition, m)
	}
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	d := model.DraftFromRecipe(s.recipes[i])
	s.draft = &d
	s.editingID = id
	s.selected = uuid.Nil
	s.errs = nil
	return nil
}

// SetDraft replaces the contents of the active draft
func (s *RecipeStore) SetDraft(d model.DraftRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNoDraft
	}
	d.IngredientLines = slices.Clone(d.IngredientLines)
	*s.draft = d
	return nil
}

// Commit adds or updates from the active draft. On success the draft and
// errors are cleared; on validation failure the draft stays open.
func (s *RecipeStore) Commit() (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, ErrNoDraft
	}

	var (
		r   *model.Recipe
		err error
	)
	if s.editingID != uuid.Nil {
		r, err = s.update(s.editingID, *s.draft)
	} else {
		r, err = s.add(*s.draft)
	}
	if err != nil {
		if verrs, ok := IsValidation(err); ok {
			s.errs = verrs.clone()
		}
		return nil, err
	}
	s.clearDraft()
	return r, nil
}

// Cancel discards the active draft and its errors
func (s *RecipeStore) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDraft()
}

// SetSearch records the current search text
func (s *RecipeStore) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
}

// Errors returns the validation errors of the last failed commit, if any
func (s *RecipeStore) Errors() ValidationErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errs.clone()
}

// Mode reports the current UI mode
func (s *RecipeStore) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode()
}

// Snapshot copies the full state for rendering
func (s *RecipeStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		Mode:    s.mode(),
		Errors:  s.errs.clone(),
		Search:  s.search,
		Results: s.filter(s.search),
		Total:   len(s.recipes),
	}
	if i := s.indexOf(s.selected); s.selected != uuid.Nil && i >= 0 {
		st.Selection = s.recipes[i].Clone()
	}
	if s.draft != nil {
		d := *s.draft
		d.IngredientLines = slices.Clone(d.IngredientLines)
		st.Draft = &d
		if s.editingID != uuid.Nil {
			id := s.editingID
			st.EditingID = &id
		}
	}
	return st
}

func (s *RecipeStore) add(d model.DraftRecipe) (*model.Recipe, error) {
	if errs := Validate(d); len(errs) > 0 {
		return nil, errs
	}

	r := d.Normalize(s.nextID(), s.placeholder)
	s.recipes = append(s.recipes, r)
	s.log.Info("recipe added", "id", r.ID, "name", r.Name, "ingredients", len(r.Ingredients))
	return r.Clone(), nil
}

func (s *RecipeStore) update(id uuid.UUID, d model.DraftRecipe) (*model.Recipe, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	if errs := Validate(d); len(errs) > 0 {
		return nil, errs
	}

	r := d.Normalize(id, s.placeholder)
	s.recipes[i] = r
	s.log.Info("recipe updated", "id", id, "name", r.Name)
	return r.Clone(), nil
}

// nextID draws ids until one is not already in use
func (s *RecipeStore) nextID() uuid.UUID {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
		s.log.Warn("generated id already in use, retrying", "id", id)
	}
}

func (s *RecipeStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.recipes, func(r *model.Recipe) bool { return r.ID == id })
}

func (s *RecipeStore) filter(query string) []*model.Recipe {
	out := make([]*model.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if query == "" || r.Matches(query) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *RecipeStore) mode() Mode {
	switch {
	case s.draft != nil && s.editingID != uuid.Nil:
		return ModeEditing
	case s.draft != nil:
		return ModeAdding
	case s.selected != uuid.Nil:
		return ModeViewing
	default:
		return ModeBrowsing
	}
}

func (s *RecipeStore) clearDraft() {
	s.draft = nil
	s.editingID = uuid.Nil
	s.errs = nil
}

// IsValidation reports whether err carries field-level validation errors
// and returns them.
func IsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
