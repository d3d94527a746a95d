package user

type User struct {
	id    int64
	name  Name
	email Email
}

// Patch carries the optional fields of a partial update; nil leaves the field unchanged.
type Patch struct {
	Name  *string
	Email *string
}

func NewUser(name Name, email Email) *User {
	return &User{
		name:  name,
		email: email,
	}
}

func ReconstructUser(id int64, name, email string) *User {
	return &User{
		id:    id,
		name:  Name{value: name},
		email: Email{value: email},
	}
}

// ApplyPatch validates every present field before changing anything
func (u *User) ApplyPatch(p Patch) error {
	name := u.name
	if p.Name != nil {
		n, err := NewName(*p.Name)
		if err != nil {
			return err
		}
		name = n
	}

	email := u.email
	if p.Email != nil {
		e, err := NewEmail(*p.Email)
		if err != nil {
			return err
		}
		email = e
	}

	u.name = name
	u.email = email
	return nil
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() Name   { return u.name }
func (u *User) Email() Email { return u.email }
