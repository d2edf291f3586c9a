package organizer

// BeginEdit makes id the item being edited, replacing any earlier edit.
func (o *Organizer) BeginEdit(id string) error {
	if _, _, err := o.locate(id); err != nil {
		return err
	}
	o.editing = id
	return nil
}

// Editing returns the id being edited.
func (o *Organizer) Editing() (string, bool) {
	return o.editing, o.editing != ""
}

// CommitEdit renames the edited item and ends the edit. A blank label is
// rejected and the edit stays open.
func (o *Organizer) CommitEdit(label string) error {
	if o.editing == "" {
		return ErrNotEditing
	}
	if _, err := o.Rename(o.editing, label); err != nil {
		return err
	}
	o.editing = ""
	return nil
}

// CancelEdit ends the edit without changes.
func (o *Organizer) CancelEdit() {
	o.editing = ""
}

func (o *Organizer) releaseEdit(id string) {
	if o.editing == id {
		o.editing = ""
	}
}
