package domain

// MainFolderName is the root folder every seminar folder is created under
const MainFolderName = "EDET_RAG_UBA_Medical_Education"

// SeminarEntry is one curriculum unit of the EDET course
type SeminarEntry struct {
	ID          int    `json:"id"`
	DisplayName string `json:"displayName"`
	FolderName  string `json:"folderName"`
}

var catalog = [...]SeminarEntry{
	{ID: 1, DisplayName: "Seminario 1: Introducción a EDET", FolderName: "EDET_Seminario_01"},
	{ID: 2, DisplayName: "Seminario 2: Fundamentos", FolderName: "EDET_Seminario_02"},
	{ID: 3, DisplayName: "Seminario 3: Conceptos Clínicos", FolderName: "EDET_Seminario_03"},
	{ID: 4, DisplayName: "Seminario 4: Práctica", FolderName: "EDET_Seminario_04"},
	{ID: 5, DisplayName: "Seminario 5: Casos Clínicos", FolderName: "EDET_Seminario_05"},
	{ID: 6, DisplayName: "Seminario 6: Evaluación", FolderName: "EDET_Seminario_06"},
	{ID: 7, DisplayName: "Seminario 7: Integración Final", FolderName: "EDET_Seminario_07"},
}

// Seminars returns a copy of the seminar catalog in declaration order
func Seminars() []SeminarEntry {
	out := make([]SeminarEntry, len(catalog))
	copy(out, catalog[:])
	return out
}

// SeminarCount is the fixed size of the catalog
func SeminarCount() int {
	return len(catalog)
}

// LookupSeminar returns the catalog entry with the given id
func LookupSeminar(id int) (SeminarEntry, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return SeminarEntry{}, false
}
