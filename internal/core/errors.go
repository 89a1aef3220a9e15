package core

// NoteError and TagError form the closed taxonomy of domain errors. They are
// meaningful to the user and are kept distinct from transport failures: the
// server answers 406 with the tag in the body, never 500, when one occurs.

type NoteError string

const (
	ErrNoteDoesNotExist  NoteError = "DoesNotExist"
	ErrNoteAlreadyExists NoteError = "AlreadyExists"
	ErrNoteEmptyName     NoteError = "EmptyName"
	ErrNoteAlreadyTagged NoteError = "NoteAlreadyTagged"
)

func (e NoteError) Error() string {
	switch e {
	case ErrNoteDoesNotExist:
		return "no such note exists"
	case ErrNoteAlreadyExists:
		return "a similarly named note already exists"
	case ErrNoteEmptyName:
		return "the provided note name is empty"
	case ErrNoteAlreadyTagged:
		return "the note already has the provided tag"
	default:
		return "unknown note error"
	}
}

type TagError string

const (
	ErrTagDoesNotExist  TagError = "DoesNotExist"
	ErrTagAlreadyExists TagError = "AlreadyExists"
	ErrTagEmptyName     TagError = "EmptyName"
	ErrTagInvalidName   TagError = "InvalidName"
)

func (e TagError) Error() string {
	switch e {
	case ErrTagDoesNotExist:
		return "no such tag exists"
	case ErrTagAlreadyExists:
		return "a similarly named tag already exists"
	case ErrTagEmptyName:
		return "the provided tag name is empty"
	case ErrTagInvalidName:
		return "tag names cannot contain whitespace"
	default:
		return "unknown tag error"
	}
}

// IsDomain reports whether err belongs to the domain taxonomy.
func IsDomain(err error) bool {
	switch err.(type) {
	case NoteError, TagError:
		return true
	default:
		return false
	}
}
