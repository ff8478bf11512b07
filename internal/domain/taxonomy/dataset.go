package taxonomy

import "github.com/openamr/amr/pkg/types/mo"

// Seed returns the embedded reference dataset.  It covers the clinically
// most relevant species plus the synthetic rows resolution depends on:
// genus-representative "species" rows, Gram-stain group rows, and family
// placeholder rows.  Deployments with a site database load the full table
// through the postgres Repository instead.
func Seed() []Record {
	return seedRecords
}

// SeedTable builds a Table from the embedded dataset.  The seed data is
// known-valid, so construction cannot fail.
func SeedTable() *Table {
	t, err := NewTable(seedRecords)
	if err != nil {
		panic("taxonomy: embedded seed dataset invalid: " + err.Error())
	}
	return t
}

// DefaultSiteCodes returns a small site code table mapping common
// laboratory system codes to identifiers.  Sites override this with their
// own mapping loaded from the database.
func DefaultSiteCodes() SiteCodes {
	return NewSiteCodes(map[string]mo.Code{
		"sau": "STAAUR",
		"sep": "STAEPI",
		"eco": "ESCCOL",
		"kpn": "KLEPNE",
		"psa": "PSEAER",
		"pne": "STCPNE",
		"hin": "HAEINF",
		// Unidentified Enterobacteriaceae member: resolves to the family
		// placeholder row, which is reachable only via codes or passthrough.
		"entb": "F_ENTRBC",
	})
}

var seedRecords = []Record{
	// Staphylococci (Bacillales / Staphylococcaceae)
	staph("STAAUR", "aureus", "Rosenbach", 1884),
	staph("STACAP", "capitis", "Kloos et al.", 1975),
	staph("STACOH", "cohnii", "Schleifer et al.", 1975),
	staph("STAEPI", "epidermidis", "Evans", 1916),
	staph("STAHAE", "haemolyticus", "Schleifer et al.", 1975),
	staph("STAHOM", "hominis", "Kloos et al.", 1975),
	staph("STAINT", "intermedius", "Hajek", 1976),
	staph("STALUG", "lugdunensis", "Freney et al.", 1988),
	staph("STAPSE", "pseudintermedius", "Devriese et al.", 2005),
	staph("STASAP", "saprophyticus", "Shaw et al.", 1951),
	staph("STASCH", "schleiferi", "Freney et al.", 1988),
	staph("STASIM", "simulans", "Kloos et al.", 1975),
	staph("STAWAR", "warneri", "Kloos et al.", 1975),
	staph("STAXYL", "xylosus", "Schleifer et al.", 1975),
	staph("STASPP", "species", "", 0),

	// Streptococci (Lactobacillales / Streptococcaceae)
	strep("STCAGA", "agalactiae", "Lehmann et al.", 1896),
	strep("STCANG", "anginosus", "Andrewes et al.", 1906),
	strep("STCDYS", "dysgalactiae", "Diernhofer", 1932),
	strep("STCEQI", "equi", "Sand et al.", 1888),
	strep("STCEQS", "equisimilis", "Frost et al.", 1936),
	strep("STCMIT", "mitis", "Andrewes et al.", 1906),
	strep("STCPNE", "pneumoniae", "Klein", 1884),
	strep("STCPYO", "pyogenes", "Rosenbach", 1884),
	strep("STCSAL", "salivarius", "Andrewes et al.", 1906),
	strep("STCSAN", "sanguis", "White et al.", 1946),
	strep("STCZOO", "zooepidemicus", "Frost et al.", 1935),
	strep("STCSPP", "species", "", 0),

	// Enterococci (Lactobacillales / Enterococcaceae)
	entero("ENCFAE", "faecalis", "Andrewes et al.", 1906),
	entero("ENCFAC", "faecium", "Orla-Jensen", 1919),
	entero("ENCSPP", "species", "", 0),

	// Enterobacteriaceae
	enteric("ESCCOL", "Escherichia", "coli", "Castellani et al.", 1919),
	enteric("ESCSPP", "Escherichia", "species", "", 0),
	enteric("ENTAER", "Enterobacter", "aerogenes", "Hormaeche et al.", 1960),
	enteric("ENTCLO", "Enterobacter", "cloacae", "Jordan", 1890),
	enteric("ENTSPP", "Enterobacter", "species", "", 0),
	enteric("KLEOXY", "Klebsiella", "oxytoca", "Flugge", 1886),
	enteric("KLEPNE", "Klebsiella", "pneumoniae", "Schroeter", 1886),
	enteric("KLESPP", "Klebsiella", "species", "", 0),
	enteric("CITFRE", "Citrobacter", "freundii", "Braak", 1928),
	enteric("PRTMIR", "Proteus", "mirabilis", "Hauser", 1885),
	enteric("SERMAR", "Serratia", "marcescens", "Bizio", 1823),

	// Non-fermenters and other Gram-negatives
	gneg("PSEAER", "Pseudomonadales", "Pseudomonadaceae", "Pseudomonas", "aeruginosa", "Schroeter", 1872),
	gneg("PSESPP", "Pseudomonadales", "Pseudomonadaceae", "Pseudomonas", "species", "", 0),
	gneg("ACIBAU", "Pseudomonadales", "Moraxellaceae", "Acinetobacter", "baumannii", "Bouvet et al.", 1986),
	gneg("MORCAT", "Pseudomonadales", "Moraxellaceae", "Moraxella", "catarrhalis", "Frosch et al.", 1896),
	gneg("HAEINF", "Pasteurellales", "Pasteurellaceae", "Haemophilus", "influenzae", "Lehmann et al.", 1896),
	gneg("HELPYL", "Campylobacterales", "Helicobacteraceae", "Helicobacter", "pylori", "Marshall et al.", 1985),
	gneg("NEIGON", "Neisseriales", "Neisseriaceae", "Neisseria", "gonorrhoeae", "Zopf", 1885),
	gneg("NEIMEN", "Neisseriales", "Neisseriaceae", "Neisseria", "meningitidis", "Albrecht et al.", 1901),

	// Other Gram-positives
	{
		Code: "LISMON", Fullname: "Listeria monocytogenes",
		Kingdom: mo.KingdomBacteria, Phylum: "Firmicutes", Class: "Bacilli",
		Order: "Bacillales", Family: "Listeriaceae",
		Genus: "Listeria", Species: "monocytogenes", Gram: mo.GramPositive,
		Authors: "Murray et al.", Year: 1926,
	},

	// Protozoa
	{
		Code: "ENTCOL", Fullname: "Entamoeba coli",
		Kingdom: mo.KingdomProtozoa, Phylum: "Amoebozoa", Class: "Archamoebae",
		Order: "Mastigamoebida", Family: "Entamoebidae",
		Genus: "Entamoeba", Species: "coli",
		Authors: "Grassi", Year: 1879,
	},
	{
		Code: "ENTHIS", Fullname: "Entamoeba histolytica",
		Kingdom: mo.KingdomProtozoa, Phylum: "Amoebozoa", Class: "Archamoebae",
		Order: "Mastigamoebida", Family: "Entamoebidae",
		Genus: "Entamoeba", Species: "histolytica",
		Authors: "Schaudinn", Year: 1903,
	},

	// Fungi
	{
		Code: "CANALB", Fullname: "Candida albicans",
		Kingdom: mo.KingdomFungi, Phylum: "Ascomycota", Class: "Saccharomycetes",
		Order: "Saccharomycetales", Family: "Saccharomycetaceae",
		Genus: "Candida", Species: "albicans",
		Authors: "Berkhout", Year: 1923,
	},
	{
		Code: "ASPFUM", Fullname: "Aspergillus fumigatus",
		Kingdom: mo.KingdomFungi, Phylum: "Ascomycota", Class: "Eurotiomycetes",
		Order: "Eurotiales", Family: "Aspergillaceae",
		Genus: "Aspergillus", Species: "fumigatus",
		Authors: "Fresenius", Year: 1863,
	},

	// Gram-stain group rows: matched by the "Gram …" fallback rung after
	// the leading token is stripped ("Gram negative rods" searches
	// "negative rods").
	{Code: "GRAMNC", Fullname: "Negative cocci", Kingdom: mo.KingdomBacteria, Gram: mo.GramNegative},
	{Code: "GRAMNR", Fullname: "Negative rods", Kingdom: mo.KingdomBacteria, Gram: mo.GramNegative},
	{Code: "GRAMPC", Fullname: "Positive cocci", Kingdom: mo.KingdomBacteria, Gram: mo.GramPositive},
	{Code: "GRAMPR", Fullname: "Positive rods", Kingdom: mo.KingdomBacteria, Gram: mo.GramPositive},

	// Family placeholder rows: excluded from name search, reachable only
	// via identifier passthrough and site codes.
	{
		Code: "F_ENTRBC", Fullname: "Enterobacteriaceae",
		Kingdom: mo.KingdomBacteria, Phylum: "Proteobacteria",
		Class: "Gammaproteobacteria", Order: "Enterobacterales",
		Family: "Enterobacteriaceae", Gram: mo.GramNegative,
	},
	{
		Code: "F_STPHYC", Fullname: "Staphylococcaceae",
		Kingdom: mo.KingdomBacteria, Phylum: "Firmicutes",
		Class: "Bacilli", Order: "Bacillales",
		Family: "Staphylococcaceae", Gram: mo.GramPositive,
	},
}

func staph(code mo.Code, species, authors string, year int) Record {
	return Record{
		Code: code, Fullname: "Staphylococcus " + species,
		Kingdom: mo.KingdomBacteria, Phylum: "Firmicutes", Class: "Bacilli",
		Order: "Bacillales", Family: "Staphylococcaceae",
		Genus: "Staphylococcus", Species: species, Gram: mo.GramPositive,
		Authors: authors, Year: year,
	}
}

func strep(code mo.Code, species, authors string, year int) Record {
	return Record{
		Code: code, Fullname: "Streptococcus " + species,
		Kingdom: mo.KingdomBacteria, Phylum: "Firmicutes", Class: "Bacilli",
		Order: "Lactobacillales", Family: "Streptococcaceae",
		Genus: "Streptococcus", Species: species, Gram: mo.GramPositive,
		Authors: authors, Year: year,
	}
}

func entero(code mo.Code, species, authors string, year int) Record {
	return Record{
		Code: code, Fullname: "Enterococcus " + species,
		Kingdom: mo.KingdomBacteria, Phylum: "Firmicutes", Class: "Bacilli",
		Order: "Lactobacillales", Family: "Enterococcaceae",
		Genus: "Enterococcus", Species: species, Gram: mo.GramPositive,
		Authors: authors, Year: year,
	}
}

func enteric(code mo.Code, genus, species, authors string, year int) Record {
	return Record{
		Code: code, Fullname: genus + " " + species,
		Kingdom: mo.KingdomBacteria, Phylum: "Proteobacteria",
		Class: "Gammaproteobacteria", Order: "Enterobacterales",
		Family: "Enterobacteriaceae",
		Genus: genus, Species: species, Gram: mo.GramNegative,
		Authors: authors, Year: year,
	}
}

func gneg(code mo.Code, order, family, genus, species, authors string, year int) Record {
	return Record{
		Code: code, Fullname: genus + " " + species,
		Kingdom: mo.KingdomBacteria, Phylum: "Proteobacteria",
		Class: "Gammaproteobacteria", Order: order, Family: family,
		Genus: genus, Species: species, Gram: mo.GramNegative,
		Authors: authors, Year: year,
	}
}
