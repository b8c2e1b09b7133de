package api

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scribe/internal/cache"
	"scribe/internal/config"
	"scribe/internal/media"
	"scribe/internal/stt"
	"scribe/internal/transcript"
	"scribe/internal/utils"
)

var (
	apiCfg       *config.Config
	sttProvider  stt.Provider
	providerOnce sync.Once
	providerErr  error
	store        *cache.Store
	modelName    string

	// swapped in tests
	extractAudio = media.ExtractAudio
)

// Setup wires the package to configuration and warms the STT provider so
// first-request latency excludes model setup. Must run before traffic.
func Setup(cfg *config.Config) error {
	apiCfg = cfg
	store = cache.New(cfg.CacheDir)
	modelName = cfg.Model
	_, err := getProvider()
	return err
}

// getProvider returns the shared STT provider (singleton). Concurrent
// first calls trigger at most one creation.
func getProvider() (stt.Provider, error) {
	providerOnce.Do(func() {
		if sttProvider != nil {
			return
		}
		sttProvider, providerErr = stt.CreateProvider(apiCfg)
		if providerErr != nil {
			log.Printf("Failed to create STT provider: %v", providerErr)
		} else {
			log.Printf("STT provider initialized: %s", sttProvider.Name())
		}
	})
	return sttProvider, providerErr
}

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", rootRedirect)
	r.GET("/docs", docsPage)
	r.POST("/transcribe", transcribeUpload)
	r.GET("/cache-files", cacheFilesJSON)
	r.GET("/cache-files/list", cacheFilesHTML)
	r.GET("/health", healthCheck)
}

// rootRedirect sends clients to the API documentation page
func rootRedirect(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/docs")
}

// healthCheck returns server health status and the configured model
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"model":  modelName,
	})
}

// transcribeUpload handles POST /transcribe: stage the upload to scratch
// files, decode to 16kHz mono WAV, transcribe, clean, optionally cache,
// and shape the response for the requested output keys.
func transcribeUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Filename == "" {
		utils.Error(c, http.StatusBadRequest, "No file provided")
		return
	}

	// Validate output keys before touching the filesystem or the model
	keys, err := transcript.ParseOutputKeys(c.DefaultQuery("output", "full"))
	if err != nil {
		var invalidErr *transcript.InvalidOutputKeysError
		if errors.As(err, &invalidErr) {
			utils.Error(c, http.StatusBadRequest, invalidErr.Error())
			return
		}
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	suffix := filepath.Ext(file.Filename)
	if suffix == "" {
		suffix = ".bin"
	}
	scratch := uuid.NewString()
	inputPath := filepath.Join(os.TempDir(), "scribe_in_"+scratch+suffix)
	wavPath := filepath.Join(os.TempDir(), "scribe_wav_"+scratch+".wav")
	defer removeScratchFiles(inputPath, wavPath)

	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		log.Printf("[Transcribe] Failed to stage upload: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to save uploaded file")
		return
	}

	if err := extractAudio(inputPath, wavPath); err != nil {
		var decodeErr *media.DecodeError
		if errors.As(err, &decodeErr) {
			utils.Error(c, http.StatusBadRequest, decodeErr.Error())
			return
		}
		log.Printf("[Transcribe] Decode error: %v", err)
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	provider, err := getProvider()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "STT provider not available: "+err.Error())
		return
	}

	raw, err := provider.Transcribe(wavPath)
	if err != nil {
		log.Printf("[Transcribe] STT error (provider: %s): %v", provider.Name(), err)
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	clean := transcript.Clean(raw)

	// Caching is requested through an output key but is a side effect: a
	// write failure fails the request rather than silently skipping it.
	var gen *transcript.CacheSummary
	if keys.Has(transcript.KeyGenCache) {
		gen, err = store.Write(clean, file.Filename)
		if err != nil {
			log.Printf("[Transcribe] Cache write error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "failed to write cache file")
			return
		}
	}

	c.JSON(http.StatusOK, transcript.Shape(clean, keys, gen))
}

// removeScratchFiles deletes the request's scratch pair. Removal is
// best-effort: a failed delete is logged, never surfaced, so it cannot
// mask the request's real outcome.
func removeScratchFiles(paths ...string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[Transcribe] Failed to remove scratch file %s: %v", path, err)
		}
	}
}

// cacheFilesJSON handles GET /cache-files
func cacheFilesJSON(c *gin.Context) {
	files, err := store.List()
	if err != nil {
		log.Printf("[Cache] List error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to list cache files")
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}
