package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/pkg/errors"
	"github.com/openamr/amr/pkg/types/mo"
)

const selectOrganisms = `
SELECT code, fullname, kingdom, phylum, class, "order", family,
       genus, species, subspecies, gram, authors, year
FROM organisms`

const selectSiteCodes = `
SELECT code, organism_code
FROM site_codes`

// TaxonomyRepository loads the reference table and site codes from PostgreSQL.
// It implements taxonomy.Repository.
type TaxonomyRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewTaxonomyRepository creates a repository over the given connection.
func NewTaxonomyRepository(conn *Connection, log logging.Logger) *TaxonomyRepository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &TaxonomyRepository{pool: conn.Pool(), logger: log.Named("taxonomy_repo")}
}

// LoadTable reads all organism rows and builds the immutable reference table.
func (r *TaxonomyRepository) LoadTable(ctx context.Context) (*taxonomy.Table, error) {
	rows, err := r.pool.Query(ctx, selectOrganisms)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeTaxonomyLoadFailed, "failed to query organisms")
	}
	defer rows.Close()

	var records []taxonomy.Record
	for rows.Next() {
		var rec taxonomy.Record
		var code, kingdom, gram string
		if err := rows.Scan(
			&code, &rec.Fullname, &kingdom, &rec.Phylum, &rec.Class, &rec.Order,
			&rec.Family, &rec.Genus, &rec.Species, &rec.Subspecies, &gram,
			&rec.Authors, &rec.Year,
		); err != nil {
			return nil, errors.Wrap(err, errors.CodeTaxonomyLoadFailed, "failed to scan organism row")
		}
		rec.Code = mo.Code(code)
		rec.Kingdom = mo.Kingdom(kingdom)
		rec.Gram = mo.GramStain(gram)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeTaxonomyLoadFailed, "organism row iteration failed")
	}

	table, err := taxonomy.NewTable(records)
	if err != nil {
		return nil, err
	}
	r.logger.Info("taxonomy table loaded", logging.Int("records", table.Len()))
	return table, nil
}

// LoadSiteCodes reads the laboratory site code mappings.
func (r *TaxonomyRepository) LoadSiteCodes(ctx context.Context) (taxonomy.SiteCodes, error) {
	rows, err := r.pool.Query(ctx, selectSiteCodes)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeTaxonomyLoadFailed, "failed to query site codes")
	}
	defer rows.Close()

	mapping := make(map[string]mo.Code)
	for rows.Next() {
		var code, organism string
		if err := rows.Scan(&code, &organism); err != nil {
			return nil, errors.Wrap(err, errors.CodeTaxonomyLoadFailed, "failed to scan site code row")
		}
		mapping[code] = mo.Code(organism)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeTaxonomyLoadFailed, "site code row iteration failed")
	}

	return taxonomy.NewSiteCodes(mapping), nil
}

const upsertOrganism = `
INSERT INTO organisms (code, fullname, kingdom, phylum, class, "order", family,
                       genus, species, subspecies, gram, authors, year)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (code) DO UPDATE SET
    fullname = EXCLUDED.fullname, kingdom = EXCLUDED.kingdom,
    phylum = EXCLUDED.phylum, class = EXCLUDED.class, "order" = EXCLUDED."order",
    family = EXCLUDED.family, genus = EXCLUDED.genus, species = EXCLUDED.species,
    subspecies = EXCLUDED.subspecies, gram = EXCLUDED.gram,
    authors = EXCLUDED.authors, year = EXCLUDED.year`

const upsertSiteCode = `
INSERT INTO site_codes (code, organism_code)
VALUES ($1, $2)
ON CONFLICT (code) DO UPDATE SET organism_code = EXCLUDED.organism_code`

// Seed upserts the given records and site codes in a single transaction.
// Used to populate a fresh database from the built-in dataset.
func (r *TaxonomyRepository) Seed(ctx context.Context, records []taxonomy.Record, codes taxonomy.SiteCodes) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to begin seed transaction")
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(upsertOrganism,
			string(rec.Code), rec.Fullname, string(rec.Kingdom), rec.Phylum,
			rec.Class, rec.Order, rec.Family, rec.Genus, rec.Species,
			rec.Subspecies, string(rec.Gram), rec.Authors, rec.Year)
	}
	for code, organism := range codes {
		batch.Queue(upsertSiteCode, code, string(organism))
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "seed batch failed")
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to commit seed transaction")
	}

	r.logger.Info("taxonomy seeded",
		logging.Int("records", len(records)),
		logging.Int("site_codes", len(codes)))
	return nil
}
