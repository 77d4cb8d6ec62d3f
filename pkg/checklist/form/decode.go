package form

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
)

// ErrQuestionsChanged is returned when a post was made against a different
// question list than the one it is decoded with.
var ErrQuestionsChanged = errors.New("questions changed since the form was rendered")

// MaxMemory bounds the multipart data kept in memory; the rest spills to disk.
const MaxMemory = 32 << 20

// DateLayout is the wire format of the date picker.
const DateLayout = "2006-01-02"

// Submission is a decoded form post.
type Submission struct {
	Session  *checklist.Session
	Header   models.HeaderInfo
	Trailing models.TrailingInfo
}

// Decode reads a form post for questions. Nothing is required: blank
// answers, comments and missing files are all accepted. A missing or
// malformed date becomes now.
func Decode(r *http.Request, questions []models.Question, now time.Time) (*Submission, error) {
	if err := r.ParseMultipartForm(MaxMemory); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, fmt.Errorf("parsing form: %w", err)
		}
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parsing form: %w", err)
		}
	}

	if set := r.FormValue(FieldQuestionSet); set != "" && set != QuestionSet(questions) {
		return nil, ErrQuestionsChanged
	}

	values := make(map[string]interface{}, len(r.Form))
	for key, vs := range r.Form {
		if len(vs) > 0 {
			values[key] = vs[0]
		}
	}

	sub := &Submission{Session: checklist.NewSession(questions)}
	if err := decodeValues(values, &sub.Header); err != nil {
		return nil, err
	}
	if err := decodeValues(values, &sub.Trailing); err != nil {
		return nil, err
	}
	if sub.Header.Date.IsZero() {
		sub.Header.Date = now
	}

	for i := range sub.Session.Questions {
		evidence, err := formImage(r, EvidenceField(i))
		if err != nil {
			return nil, err
		}
		answer := models.Answer{
			Result:   models.ParseResult(r.FormValue(ResultField(i))),
			Comment:  r.FormValue(CommentField(i)),
			Evidence: evidence,
		}
		if err := sub.Session.Set(i, answer); err != nil {
			return nil, err
		}
	}

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File[FieldAnnex] {
			img, err := readImage(fh)
			if err != nil {
				return nil, err
			}
			if img != nil {
				sub.Trailing.AnnexPhotos = append(sub.Trailing.AnnexPhotos, *img)
			}
		}
	}

	return sub, nil
}

// QuestionSet fingerprints the question list (count, rows and text) so a
// post can be matched to the form it came from.
func QuestionSet(questions []models.Question) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(questions)))
	for _, q := range questions {
		b.WriteByte('\n')
		b.WriteString(strconv.Itoa(q.SourceRow))
		b.WriteByte('\t')
		b.WriteString(q.Text)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(b.String())).String()
}

func decodeValues(values map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       dateHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decoding form values: %w", err)
	}
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// dateHook turns date picker strings into time.Time. Unparseable input
// decodes to the zero time rather than failing the submission.
func dateHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}
	t, err := time.Parse(DateLayout, data.(string))
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}

// formImage returns the single upload under name, or nil when none was sent.
func formImage(r *http.Request, name string) (*models.Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File[name]
	if len(files) == 0 {
		return nil, nil
	}
	return readImage(files[0])
}

// readImage loads an upload into memory. Empty uploads (a file input left
// blank by some browsers) yield nil.
func readImage(fh *multipart.FileHeader) (*models.Image, error) {
	if fh.Size == 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", fh.Filename, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &models.Image{Name: fh.Filename, Data: data}, nil
}
