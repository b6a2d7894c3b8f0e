package roster

import "github.com/arloliu/rota/types"

// defaultStudentCount is the size of the built-in student roster.
const defaultStudentCount = 20

var defaultJobTitles = []types.JobTitle{
	"Line Leader",
	"Door Holder",
	"Messenger",
	"Board Cleaner",
	"Librarian",
	"Plant Waterer",
	"Paper Passer",
	"Lights Monitor",
	"Calendar Helper",
	"Recycling Monitor",
}

// DefaultStudents returns the built-in student roster (1 through 20).
func DefaultStudents() []types.Student {
	out := make([]types.Student, defaultStudentCount)
	for i := range out {
		out[i] = types.Student(i + 1)
	}

	return out
}

// DefaultJobTitles returns the built-in job roster.
func DefaultJobTitles() []types.JobTitle {
	return append([]types.JobTitle(nil), defaultJobTitles...)
}
