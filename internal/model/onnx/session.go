package onnx

import (
	"fmt"
	"sync"

	"github.com/Brownie44l1/aidetect-api/internal/model"
	ort "github.com/yalue/onnxruntime_go"
)

// Init loads the onnxruntime shared library and initializes the environment.
// It must be called once before any session is created.
func Init(libPath string) error {
	if ort.IsInitialized() {
		return nil
	}
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}
	return nil
}

func Shutdown() error {
	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// Session is a loaded model with preallocated input and output tensors.
// Runs are serialized because the tensors are shared.
type Session struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	Metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewSession(modelPath, metadataPath string) (*Session, error) {
	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{metadata.InputName}, []string{metadata.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session for %s: %w", modelPath, err)
	}

	return &Session{
		session:      session,
		Metadata:     metadata,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Predict runs the model on one input and maps its output to AI/Human probabilities.
func (s *Session) Predict(input []float32) (model.Result, error) {
	if want := s.Metadata.InputSize(); len(input) != want {
		return model.Result{}, fmt.Errorf("expected %d input values, got %d", want, len(input))
	}

	s.mu.Lock()
	copy(s.inputTensor.GetData(), input)
	if err := s.session.Run(); err != nil {
		s.mu.Unlock()
		return model.Result{}, fmt.Errorf("inference failed: %w", err)
	}
	output := append([]float32(nil), s.outputTensor.GetData()...)
	s.mu.Unlock()

	return toResult(s.Metadata, output)
}

func (s *Session) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
}
