package crud

import "fmt"

// Messages are the user facing texts returned when an operation fails.
type Messages struct {
	List     string
	Create   string
	Edit     string
	Update   string
	Delete   string
	NotFound string
}

// Noun describes how an entity is named in messages.
type Noun struct {
	Singular string // "hotel"
	Plural   string // "hotels"
	Feminine bool
}

func MessagesFor(n Noun) Messages {
	nuevo, encontrado := "nuevo", "encontrado"
	if n.Feminine {
		nuevo, encontrado = "nueva", "encontrada"
	}
	return Messages{
		List:     fmt.Sprintf("Error retrieving %s", n.Plural),
		Create:   fmt.Sprintf("Error creando %s %s", nuevo, n.Singular),
		Edit:     fmt.Sprintf("Error obteniendo %s para edición", n.Singular),
		Update:   fmt.Sprintf("Error actualizando %s", n.Singular),
		Delete:   fmt.Sprintf("Error eliminando %s", n.Singular),
		NotFound: fmt.Sprintf("%s no %s", capitalize(n.Singular), encontrado),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
