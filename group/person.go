package group

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Person is a plain value record. Persons are equal if name and age are equal.
type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("Person(name=%s, age=%d)", p.Name, p.Age)
}

// Fingerprint returns a structural hash of p. Equal persons have equal fingerprints.
func (p Person) Fingerprint() string {
	h, err := structhash.Hash(p, 1)
	if err != nil { // cannot happen for a struct of plain fields
		panic(err)
	}
	return h
}

// ByAge is a key function for grouping persons by age.
func ByAge(p Person) int {
	return p.Age
}

// ByName is a key function for grouping persons by name.
func ByName(p Person) string {
	return p.Name
}

// Sample returns a fixed list of persons.
func Sample() []Person {
	return []Person{
		{Name: "Alice", Age: 31},
		{Name: "Bob", Age: 29},
		{Name: "Carol", Age: 31},
	}
}
