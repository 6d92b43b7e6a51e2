package landmarks

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// meshPoints is the number of points in the face-mesh model output
// (468 contour points plus 10 refined iris points).
const meshPoints = 478

// Config holds mesh source configuration.
type Config struct {
	FaceModelPath    string  // Path to YuNet face detection ONNX model
	MeshModelPath    string  // Path to face-mesh landmark ONNX model
	ConfidenceThresh float64 // Minimum face detection confidence (default 0.5)
	MeshInputSize    int     // Face-mesh model input size (square, default 192)
}

// DefaultConfig returns production defaults for the mesh source.
func DefaultConfig() Config {
	return Config{
		FaceModelPath:    "models/face_detection_yunet.onnx",
		MeshModelPath:    "models/face_mesh.onnx",
		ConfidenceThresh: 0.5,
		MeshInputSize:    192,
	}
}

// MeshSource locates a face with YuNet, then runs a face-mesh landmark
// network on the face region to recover iris and eyelid positions.
type MeshSource struct {
	detector gocv.FaceDetectorYN
	mesh     gocv.Net
	config   Config
}

// NewMeshSource creates a landmark source backed by local ONNX models.
func NewMeshSource(cfg Config) (*MeshSource, error) {
	for _, path := range []string{cfg.FaceModelPath, cfg.MeshModelPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("model file not found: %s", path)
		}
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.FaceModelPath,
		"",                          // No config file needed for ONNX
		image.Pt(320, 320),          // Initial input size, updated per frame
		float32(cfg.ConfidenceThresh),
		0.3,  // NMS threshold
		5000, // Top K
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	mesh := gocv.ReadNetFromONNX(cfg.MeshModelPath)
	if mesh.Empty() {
		detector.Close()
		return nil, fmt.Errorf("failed to load face-mesh model: %s", cfg.MeshModelPath)
	}

	return &MeshSource{
		detector: detector,
		mesh:     mesh,
		config:   cfg,
	}, nil
}

// Process finds the most prominent face in the frame and extracts the
// eye landmarks from it. Returns false when no face clears the
// confidence threshold.
func (s *MeshSource) Process(frame gocv.Mat) (Set, bool) {
	var set Set

	if frame.Empty() {
		return set, false
	}

	roi, ok := s.detectFace(frame)
	if !ok {
		return set, false
	}

	points, ok := s.meshLandmarks(frame, roi)
	if !ok {
		return set, false
	}

	frameW := float64(frame.Cols())
	frameH := float64(frame.Rows())
	for role, idx := range MeshIndex {
		p := points[idx]
		set[role] = Point{X: p.X / frameW, Y: p.Y / frameH}
	}

	return set, true
}

// detectFace runs YuNet and returns the best face bounding box in pixels.
func (s *MeshSource) detectFace(frame gocv.Mat) (image.Rectangle, bool) {
	s.detector.SetInputSize(image.Pt(frame.Cols(), frame.Rows()))

	faces := gocv.NewMat()
	defer faces.Close()

	s.detector.Detect(frame, &faces)
	if faces.Rows() == 0 {
		return image.Rectangle{}, false
	}

	// YuNet output format (15 columns):
	// 0-3: x, y, w, h (bounding box in pixels)
	// 4-13: 5 coarse facial landmarks (x,y pairs)
	// 14: face score
	// Pick the highest-scoring face; the pipeline is single-face.
	bestRow, bestScore := -1, float32(0)
	for r := 0; r < faces.Rows(); r++ {
		if score := faces.GetFloatAt(r, 14); score > bestScore {
			bestRow, bestScore = r, score
		}
	}
	if bestRow < 0 || float64(bestScore) < s.config.ConfidenceThresh {
		return image.Rectangle{}, false
	}

	x := int(faces.GetFloatAt(bestRow, 0))
	y := int(faces.GetFloatAt(bestRow, 1))
	w := int(faces.GetFloatAt(bestRow, 2))
	h := int(faces.GetFloatAt(bestRow, 3))

	// Pad the box so the mesh model sees the full eye region.
	pad := w / 4
	rect := image.Rect(x-pad, y-pad, x+w+pad, y+h+pad)
	rect = rect.Intersect(image.Rect(0, 0, frame.Cols(), frame.Rows()))
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return image.Rectangle{}, false
	}

	return rect, true
}

// meshLandmarks runs the face-mesh network on the face region and maps
// its output back into full-frame pixel coordinates.
func (s *MeshSource) meshLandmarks(frame gocv.Mat, roi image.Rectangle) ([meshPoints]Point, bool) {
	var points [meshPoints]Point

	face := frame.Region(roi)
	defer face.Close()

	size := s.config.MeshInputSize
	blob := gocv.BlobFromImage(face, 1.0/255.0, image.Pt(size, size),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	s.mesh.SetInput(blob, "")
	out := s.mesh.Forward("")
	defer out.Close()

	// The model emits x,y,z triplets in input-pixel coordinates.
	flat, err := out.DataPtrFloat32()
	if err != nil || len(flat) < meshPoints*3 {
		return points, false
	}

	sx := float64(roi.Dx()) / float64(size)
	sy := float64(roi.Dy()) / float64(size)
	for i := 0; i < meshPoints; i++ {
		points[i] = Point{
			X: float64(roi.Min.X) + float64(flat[i*3])*sx,
			Y: float64(roi.Min.Y) + float64(flat[i*3+1])*sy,
		}
	}

	return points, true
}

// Close releases the detector and network resources.
func (s *MeshSource) Close() error {
	s.detector.Close()
	return s.mesh.Close()
}
