package pitch

import "github.com/swaralipi/swaralipi/model"

// Tabla bols are percussive: every symbol maps to the sentinel degree
// N1, pitch carries no meaning.
var tablaTable = map[string]model.Degree{
	"dha":      model.N1,
	"dhin":     model.N1,
	"ta":       model.N1,
	"ka":       model.N1,
	"na":       model.N1,
	"ge":       model.N1,
	"trka":     model.N1,
	"terekita": model.N1,
}
