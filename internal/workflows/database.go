package workflows

import (
	"context"
	"path/filepath"

	"github.com/foreverhost/dbengine/internal/clpctl"
)

// Provision creates the tenant database and, when dump is set, loads it.
// The import is skipped if the creation fails.
func Provision(ctx context.Context, engine *clpctl.Engine, node, gdpsID, dump string) *Report {
	tf := NewTaskFlow(ctx, "provision-"+gdpsID, engine, true)

	tf.Create(node, gdpsID)
	if dump != "" {
		tf.Import(gdpsID, dump)
	}

	return tf.Run()
}

// DeleteAll deletes each tenant database in turn, continuing past failures.
func DeleteAll(ctx context.Context, engine *clpctl.Engine, gdpsIDs []string) *Report {
	tf := NewTaskFlow(ctx, "delete", engine, false)

	for _, id := range gdpsIDs {
		tf.Delete(id)
	}

	return tf.Run()
}

// Backup exports each tenant database into dir as gdps-<id><ext>,
// continuing past failures.
func Backup(ctx context.Context, engine *clpctl.Engine, dir, ext string, gdpsIDs []string) *Report {
	tf := NewTaskFlow(ctx, "backup", engine, false)

	for _, id := range gdpsIDs {
		tf.Export(id, BackupPath(dir, id, ext))
	}

	return tf.Run()
}

// BackupPath returns where Backup writes the dump of a tenant database.
func BackupPath(dir, gdpsID, ext string) string {
	return filepath.Join(dir, clpctl.DatabaseName(gdpsID)+ext)
}
