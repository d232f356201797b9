package usecase

import (
	"context"
	"sort"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/minio"
)

// ListReferencedFiles walks a record's normalized steps and returns the
// distinct source documents its observations cite, with a presigned download
// URL per file when object storage is configured.
func (uc *implUseCase) ListReferencedFiles(ctx context.Context, sc model.Scope, input report.GetInput) (report.ListFilesOutput, error) {
	rec, err := uc.Get(ctx, sc, input)
	if err != nil {
		return report.ListFilesOutput{}, err
	}

	payload, err := model.NormalizePayload(rec.Payload)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReferencedFiles: Failed to normalize payload for %s: %v", rec.ExecutionID, err)
		return report.ListFilesOutput{}, report.ErrInvalidPayload
	}

	chunkCounts := collectReferencedFiles(payload)

	names := make([]string, 0, len(chunkCounts))
	for name := range chunkCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]report.ReferencedFile, 0, len(names))
	for _, name := range names {
		file := report.ReferencedFile{
			FileName:   name,
			ChunkCount: chunkCounts[name],
		}

		if uc.minio != nil {
			presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
				BucketName: uc.config.DocumentBucket,
				ObjectName: name,
				Expiry:     uc.config.PresignExpiry,
			})
			if err != nil {
				uc.l.Errorf(ctx, "report.usecase.ListReferencedFiles: Failed to presign %s: %v", name, err)
				return report.ListFilesOutput{}, report.ErrDownloadURLFailed
			}
			file.DownloadURL = presigned.URL
			file.ExpiresAt = presigned.ExpiresAt
		}

		files = append(files, file)
	}

	return report.ListFilesOutput{
		ExecutionID: rec.ExecutionID,
		Files:       files,
	}, nil
}

// collectReferencedFiles counts distinct (file, chunk) references per file.
// Chunks without a file name are not downloadable and are skipped.
func collectReferencedFiles(payload model.Payload) map[string]int {
	type fileChunk struct {
		name  string
		chunk int
	}

	seen := make(map[fileChunk]struct{})
	counts := make(map[string]int)

	for _, step := range payload.Steps {
		for _, chunk := range step.Observation.Chunks {
			name := chunk.Metadata.FileName
			if name == "" {
				continue
			}

			chunkIdx := -1
			if chunk.Metadata.ChunkIndex != nil {
				chunkIdx = *chunk.Metadata.ChunkIndex
			}

			key := fileChunk{name: name, chunk: chunkIdx}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			counts[name]++
		}
	}

	return counts
}
